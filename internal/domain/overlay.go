package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// OverlayDocument is the rendered output for a map-visualization client: a
// header followed by one colored polygon block per warning, in extraction
// order.
type OverlayDocument struct {
	Title          string
	RefreshSeconds int
	Warnings       []Warning
}

// Render serializes the document into the line-oriented overlay grammar:
//
//	Title: <title>
//	Refresh: <seconds>
//
//	Color: <r g b>
//	Line: <width>, 0, "Issued <time>"
//	<lon>, <-lat>
//	...
//	End:
//
// Coordinate lines carry longitude first and the latitude sign-flipped, two
// decimals each. The label time is the locale-independent ANSIC form.
func (d OverlayDocument) Render() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Title: %s\nRefresh: %d\n\n", d.Title, d.RefreshSeconds)

	for _, w := range d.Warnings {
		fmt.Fprintf(&buf, "Color: %s\nLine: %s, 0, \"Issued %s\"\n",
			w.Color, formatWidth(w.LineWidth), w.IssuedAt.Format(time.ANSIC))
		for _, c := range w.Polygon {
			fmt.Fprintf(&buf, "%.2f, %.2f\n", c.Lon, -c.Lat)
		}
		buf.WriteString("End:\n\n")
	}

	return buf.Bytes()
}

// formatWidth renders a line width without a trailing ".0" so whole-number
// widths emit as "5" and halves as "3.5".
func formatWidth(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
