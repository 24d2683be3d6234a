package figure

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/google/uuid"
)

// PlotlyJS is the script URL embedded by WriteHTML.
const PlotlyJS = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// cellHeight is the pixel height given to each subplot row in WriteHTML.
const cellHeight = 500

var htmlTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.Script}}"></script>
</head>
<body>
<div id="{{.DivID}}" style="width:100%;height:{{.Height}}px;"></div>
<script>
var fig = {{.Figure}};
Plotly.newPlot({{.DivID}}, fig.data, fig.layout);
</script>
</body>
</html>
`))

// WriteJSON writes the figure in plotly.js's {data, layout} form.
func (f *Figure) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	return nil
}

// WriteHTML writes a standalone page that draws the figure with plotly.js.
func (f *Figure) WriteHTML(w io.Writer, title string) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	rows := f.rows
	if rows < 1 {
		rows = 1
	}
	err = htmlTemplate.Execute(w, struct {
		Title  string
		Script string
		DivID  string
		Height int
		Figure template.JS
	}{
		Title:  title,
		Script: PlotlyJS,
		DivID:  "figure-" + uuid.NewString(),
		Height: rows * cellHeight,
		Figure: template.JS(data),
	})
	if err != nil {
		return fmt.Errorf("render figure html: %w", err)
	}
	return nil
}
