// Package layout places elements on the table grid.
//
// Cells live in a Width x Height unit space with y growing upward, so
// period 1 sits at the top. The lanthanide (57..71) and actinide (89..103)
// series are moved to synthetic periods 8 and 9, drawn half a cell below
// the main body, and four label-only placeholder cells mark where the
// series branch off.
package layout

import (
	"fmt"

	"periodic-heatmap/element"
	"periodic-heatmap/score"
)

// Grid geometry in data units.
const (
	CellSize  = 1.0
	CellGap   = 0.1
	EdgeWidth = 0.5 // border width in points

	Width  = 20.0
	Height = 11.0
)

// Synthetic footnote rows.
const (
	LanthanidePeriod = 8
	ActinidePeriod   = 9
)

// Kind distinguishes drawn element cells from label-only placeholders.
type Kind int

const (
	Real Kind = iota
	Placeholder
)

func (k Kind) String() string {
	switch k {
	case Real:
		return "real"
	case Placeholder:
		return "placeholder"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Cell is one positioned entry of the table. Number, Score and NameOrigin
// are only meaningful when Kind is Real.
type Cell struct {
	Kind       Kind
	Number     int
	Symbol     string
	Group      int
	Period     int
	Score      int
	NameOrigin string

	X, Y float64 // lower-left corner
}

// Result is the output of Build.
type Result struct {
	Cells []Cell

	// Skipped lists real elements left off the grid because they have no group.
	Skipped []string
}

// Placement applies the footnote-row overrides to an element's nominal group and period.
func Placement(number, group, period int) (int, int) {
	switch {
	case number >= 57 && number <= 71:
		return number - 57 + 3, LanthanidePeriod
	case number >= 89 && number <= 103:
		return number - 89 + 3, ActinidePeriod
	}
	return group, period
}

// Position returns the lower-left corner of the cell at (group, period).
func Position(group, period int) (x, y float64) {
	x = (CellSize + CellGap) * float64(group-1)
	y = Height - (CellSize+CellGap)*float64(period)
	if period >= LanthanidePeriod {
		y -= CellSize * 0.5
	}
	return x, y
}

// Placeholders returns the LA/AC label cells, positioned.
func Placeholders() []Cell {
	cells := []Cell{
		{Kind: Placeholder, Symbol: "LA", Group: 3, Period: 6},
		{Kind: Placeholder, Symbol: "AC", Group: 3, Period: 7},
		{Kind: Placeholder, Symbol: "LA", Group: 2, Period: LanthanidePeriod},
		{Kind: Placeholder, Symbol: "AC", Group: 2, Period: ActinidePeriod},
	}
	for i := range cells {
		cells[i].X, cells[i].Y = Position(cells[i].Group, cells[i].Period)
	}
	return cells
}

// Build looks up every element of src, places it and attaches its score.
// Placeholders are appended after the real cells.
func Build(src element.Source, scores score.Table) (Result, error) {
	var res Result
	res.Cells = make([]Cell, 0, src.Count()+4)

	for n := 1; n <= src.Count(); n++ {
		el, err := src.Lookup(n)
		if err != nil {
			return Result{}, fmt.Errorf("layout element %d: %w", n, err)
		}

		group, period := Placement(el.Number, el.Group, el.Period)
		if group == 0 {
			res.Skipped = append(res.Skipped, el.Symbol)
			continue
		}

		c := Cell{
			Kind:       Real,
			Number:     el.Number,
			Symbol:     el.Symbol,
			Group:      group,
			Period:     period,
			Score:      scores.Lookup(el.Symbol),
			NameOrigin: el.NameOrigin,
		}
		c.X, c.Y = Position(group, period)
		res.Cells = append(res.Cells, c)
	}

	res.Cells = append(res.Cells, Placeholders()...)
	return res, nil
}
