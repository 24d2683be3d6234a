package figure

import "fmt"

// Spacing between subplot cells as a fraction of the figure, divided by the
// number of columns (horizontal) or rows (vertical).
const (
	horizontalSpacing = 0.2
	verticalSpacing   = 0.3
	titleFontSize     = 16
)

// MakeSubplots returns a figure with a rows x cols grid of empty 3D scenes.
// Cells are numbered row-major from the top left. titles label the cells in
// order; extra titles are dropped and missing ones leave cells untitled.
func MakeSubplots(rows, cols int, titles []string) (*Figure, error) {
	if rows < 0 || cols < 1 {
		return nil, fmt.Errorf("invalid subplot grid %dx%d", rows, cols)
	}

	f := New()
	f.rows, f.cols = rows, cols
	f.titles = append([]string(nil), titles...)
	if rows == 0 {
		return f, nil
	}

	hs := horizontalSpacing / float64(cols)
	vs := verticalSpacing / float64(rows)
	width := (1 - hs*float64(cols-1)) / float64(cols)
	height := (1 - vs*float64(rows-1)) / float64(rows)

	f.Layout.Scenes = make([]*Scene, 0, rows*cols)
	for r := 0; r < rows; r++ {
		top := 1 - float64(r)*(height+vs)
		for c := 0; c < cols; c++ {
			left := float64(c) * (width + hs)
			d := Domain{X: [2]float64{left, left + width}, Y: [2]float64{top - height, top}}
			f.Layout.Scenes = append(f.Layout.Scenes, &Scene{Domain: d})

			idx := r*cols + c
			if idx < len(titles) {
				f.Layout.Annotations = append(f.Layout.Annotations, Annotation{
					Text:      titles[idx],
					X:         left + width/2,
					Y:         top,
					XRef:      "paper",
					YRef:      "paper",
					XAnchor:   "center",
					YAnchor:   "bottom",
					ShowArrow: false,
					Font:      Font{Size: titleFontSize},
				})
			}
		}
	}
	return f, nil
}
