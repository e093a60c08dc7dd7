package render

import (
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"strings"
)

// PixelsPerUnit is the SVG user-space size of one data unit.
const PixelsPerUnit = 50.0

const svgFontFamily = "Arial, Helvetica, sans-serif"

// WriteSVG writes fig as a standalone SVG document. Each rect carries its
// label in a <title> child, which viewers show as a hover tooltip.
func WriteSVG(w io.Writer, fig *Figure) error {
	var svg strings.Builder

	width := fig.Width * PixelsPerUnit
	height := fig.Height * PixelsPerUnit
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, num(width), num(height), num(width), num(height))

	svg.WriteString(`<g id="cells" stroke="#000000">` + "\n")
	for i := range fig.Rects {
		r := &fig.Rects[i]
		fmt.Fprintf(&svg, `<rect id="cell-%s" x="%s" y="%s" width="%s" height="%s" fill="%s" stroke-width="%s">`,
			html.EscapeString(r.Symbol),
			num(r.X*PixelsPerUnit), num(fig.flipY(r.Y+r.H)),
			num(r.W*PixelsPerUnit), num(r.H*PixelsPerUnit),
			r.Fill.Hex(), num(r.EdgeWidth/PointsPerUnit*PixelsPerUnit))
		if r.Label != "" {
			fmt.Fprintf(&svg, "<title>%s</title>", html.EscapeString(r.Label))
		}
		svg.WriteString("</rect>\n")
	}
	svg.WriteString("</g>\n")

	fmt.Fprintf(&svg, `<g id="labels" font-family="%s" fill="#000000" dominant-baseline="central">`+"\n", svgFontFamily)
	for _, t := range fig.Texts {
		anchor := "start"
		if t.Align == AlignCenter {
			anchor = "middle"
		}
		weight := "normal"
		if t.Bold {
			weight = "bold"
		}
		fmt.Fprintf(&svg, `<text x="%s" y="%s" font-size="%s" font-weight="%s" text-anchor="%s">%s</text>`+"\n",
			num(t.X*PixelsPerUnit), num(fig.flipY(t.Y)),
			num(t.Size/PointsPerUnit*PixelsPerUnit), weight, anchor,
			html.EscapeString(t.Body))
	}
	svg.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, svg.String())
	return err
}

// flipY converts a data-space y into SVG pixels, which grow downward.
func (f *Figure) flipY(y float64) float64 {
	return (f.Height - y) * PixelsPerUnit
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
