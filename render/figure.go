// Package render turns positioned cells into a backend-neutral Figure and
// writes it out as SVG or PNG. A Figure also answers hit tests, which the
// Cursor uses to drive hover labels.
package render

import (
	"strconv"

	"periodic-heatmap/colormap"
	"periodic-heatmap/layout"
)

// Font sizes in points.
const (
	NumberFontSize = 6
	SymbolFontSize = 9
	ScoreFontSize  = 6
)

// PointsPerUnit converts point sizes into data units: the 20 unit wide
// table spans a 10 inch (720 pt) page.
const PointsPerUnit = 720.0 / layout.Width

// Align is the horizontal anchor of a Text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Rect is a bordered cell. Label is shown when the pointer hovers over it.
type Rect struct {
	X, Y, W, H float64
	Fill       colormap.Fill
	EdgeWidth  float64
	Label      string
	Symbol     string
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r *Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Text is a label anchored at (X, Y), vertically centered on Y.
type Text struct {
	X, Y  float64
	Body  string
	Size  float64
	Bold  bool
	Align Align
}

// Figure is a drawing in data units with y growing upward.
type Figure struct {
	Width, Height float64
	Rects         []Rect
	Texts         []Text
}

// Draw builds the table figure. Real cells get a filled, bordered rect and
// three labels; placeholders get only their symbol.
func Draw(cells []layout.Cell, scale colormap.Scale) *Figure {
	fig := &Figure{Width: layout.Width, Height: layout.Height}

	for _, c := range cells {
		if c.Kind == layout.Placeholder {
			fig.Texts = append(fig.Texts, symbolText(c))
			continue
		}

		fig.Rects = append(fig.Rects, Rect{
			X:         c.X,
			Y:         c.Y,
			W:         layout.CellSize,
			H:         layout.CellSize,
			Fill:      scale.Map(c.Score),
			EdgeWidth: layout.EdgeWidth,
			Label:     c.NameOrigin,
			Symbol:    c.Symbol,
		})
		fig.Texts = append(fig.Texts,
			Text{X: c.X + 0.04, Y: c.Y + 0.8, Body: strconv.Itoa(c.Number), Size: NumberFontSize, Align: AlignLeft},
			symbolText(c),
			Text{X: c.X + 0.5, Y: c.Y + 0.12, Body: strconv.Itoa(c.Score), Size: ScoreFontSize, Align: AlignCenter},
		)
	}
	return fig
}

func symbolText(c layout.Cell) Text {
	return Text{X: c.X + 0.5, Y: c.Y + 0.5, Body: c.Symbol, Size: SymbolFontSize, Bold: true, Align: AlignCenter}
}

// HitTest returns the topmost rect containing (x, y).
func (f *Figure) HitTest(x, y float64) (*Rect, bool) {
	for i := len(f.Rects) - 1; i >= 0; i-- {
		if f.Rects[i].Contains(x, y) {
			return &f.Rects[i], true
		}
	}
	return nil, false
}

// Lookup returns the rect drawn for symbol.
func (f *Figure) Lookup(symbol string) (*Rect, bool) {
	for i := range f.Rects {
		if f.Rects[i].Symbol == symbol {
			return &f.Rects[i], true
		}
	}
	return nil, false
}
