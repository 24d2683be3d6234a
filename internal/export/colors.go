package export

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parseCSSColor reads the "rgb(r, g, b)" and "rgb(r, g, b, a)" strings the
// figure traces carry. Channels are in [0,255]; alpha is in [0,1] and is
// clamped.
func parseCSSColor(s string) (color.NRGBA, error) {
	inner, ok := strings.CutPrefix(strings.TrimSpace(s), "rgb(")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unsupported colour %q", s)
	}
	inner, ok = strings.CutSuffix(inner, ")")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("unsupported colour %q", s)
	}
	parts := strings.Split(inner, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("colour %q has %d channels", s, len(parts))
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("colour %q channel %d: %w", s, i, err)
		}
		ch[i] = v
	}
	return color.NRGBA{
		R: uint8(clamp(ch[0], 0, 255)),
		G: uint8(clamp(ch[1], 0, 255)),
		B: uint8(clamp(ch[2], 0, 255)),
		A: uint8(clamp(ch[3], 0, 1) * 255),
	}, nil
}

// hexColor formats c as "#rrggbb", dropping alpha.
func hexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}

// traceColors returns a palette of n distinct colours, used for traces
// without per-point colours.
func traceColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}

	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
