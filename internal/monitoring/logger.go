package monitoring

import (
	"log"

	"go.uber.org/zap"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but may
// be replaced by SetLogger. Tests or production code can redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Warnf reports a non-fatal problem through Logf.
func Warnf(format string, v ...interface{}) {
	Logf("warning: "+format, v...)
}

// UseZap routes Logf through l's sugared logger at info level.
// A nil logger restores log.Printf.
func UseZap(l *zap.Logger) {
	if l == nil {
		Logf = log.Printf
		return
	}
	Logf = l.WithOptions(zap.AddCallerSkip(1)).Sugar().Infof
}
