package vis

import (
	"fmt"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/monitoring"
)

// BuildGrid returns a figure with sceneCount/ncols rows of ncols empty 3D
// scenes, titled in row-major order. When ncols does not divide sceneCount
// it logs a warning and still truncates the row count; scenes past the last
// full row have no cell.
func BuildGrid(sceneCount, ncols int, titles []string) (*figure.Figure, error) {
	if ncols < 1 {
		return nil, fmt.Errorf("%w: ncols must be positive, got %d", ErrInvalidOption, ncols)
	}
	if sceneCount < 0 {
		return nil, fmt.Errorf("%w: negative scene count %d", ErrInvalidOption, sceneCount)
	}
	rows := sceneCount / ncols
	if sceneCount%ncols != 0 {
		monitoring.Warnf("ncols %d is invalid for %d subplots; grid has %d rows (%d cells)",
			ncols, sceneCount, rows, rows*ncols)
	}
	return figure.MakeSubplots(rows, ncols, titles)
}

// gridCell returns the 1-based row and column of subplot idx.
func gridCell(idx, ncols int) (row, col int) {
	return idx/ncols + 1, idx%ncols + 1
}
