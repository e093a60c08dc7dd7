// Package viewer shows a rendered Figure in the terminal. Moving the mouse
// over a cell pops up a tooltip with the cell's label.
package viewer

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"periodic-heatmap/colormap"
	"periodic-heatmap/render"
)

const (
	tooltipWidth = 44
	helpText     = " hover a cell for its name origin · q/Esc to quit "
)

var (
	styleBase    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleUnfill  = tcell.StyleDefault.Background(tcell.NewRGBColor(48, 48, 48)).Foreground(tcell.ColorWhite)
	styleTooltip = tcell.StyleDefault.Background(tcell.NewRGBColor(255, 255, 224)).Foreground(tcell.ColorBlack)
	styleHelp    = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
)

// Viewer draws a figure on a tcell screen and tracks hover.
type Viewer struct {
	screen tcell.Screen
	fig    *render.Figure
	cursor *render.Cursor

	width, height int
	mouseX, mouseY int
	tooltip        string
}

// New binds fig to an initialized screen. The caller owns the screen.
func New(screen tcell.Screen, fig *render.Figure) *Viewer {
	v := &Viewer{screen: screen, fig: fig, cursor: render.NewCursor(fig)}
	v.cursor.Connect(func(r *render.Rect) {
		if r == nil {
			v.tooltip = ""
			return
		}
		v.tooltip = r.Label
	})
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.SetStyle(styleBase)
	v.width, v.height = screen.Size()
	return v
}

// Tooltip returns the label currently shown, or "".
func (v *Viewer) Tooltip() string {
	return v.tooltip
}

// Run draws and handles events until the user quits.
func (v *Viewer) Run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.width, v.height = v.screen.Size()
			v.screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		case *tcell.EventMouse:
			v.mouseX, v.mouseY = ev.Position()
			v.hover(v.mouseX, v.mouseY)
		}
		v.draw()
	}
}

// hover maps a terminal cell into figure space and moves the cursor there.
func (v *Viewer) hover(col, row int) {
	if col < 0 || row < 0 || col >= v.width || row >= v.plotRows() {
		v.cursor.Leave()
		return
	}
	x, y := v.toFigure(float64(col)+0.5, float64(row)+0.5)
	v.cursor.Move(x, y)
}

// plotRows leaves the bottom line for help text.
func (v *Viewer) plotRows() int {
	if v.height < 2 {
		return v.height
	}
	return v.height - 1
}

func (v *Viewer) scale() (sx, sy float64) {
	return float64(v.width) / v.fig.Width, float64(v.plotRows()) / v.fig.Height
}

func (v *Viewer) toFigure(col, row float64) (x, y float64) {
	sx, sy := v.scale()
	return col / sx, v.fig.Height - row/sy
}

func (v *Viewer) toScreen(x, y float64) (col, row int) {
	sx, sy := v.scale()
	return int(x * sx), int((v.fig.Height - y) * sy)
}

func (v *Viewer) draw() {
	v.screen.Clear()
	rows := v.plotRows()

	// Paint every terminal cell whose center lies inside a rect.
	fills := make(map[*render.Rect]tcell.Style)
	for row := 0; row < rows; row++ {
		for col := 0; col < v.width; col++ {
			x, y := v.toFigure(float64(col)+0.5, float64(row)+0.5)
			r, ok := v.fig.HitTest(x, y)
			if !ok {
				continue
			}
			st, seen := fills[r]
			if !seen {
				st = cellStyle(r.Fill)
				fills[r] = st
			}
			v.screen.SetContent(col, row, ' ', nil, st)
		}
	}

	for _, t := range v.fig.Texts {
		col, row := v.toScreen(t.X, t.Y)
		if t.Align == render.AlignCenter {
			col -= len([]rune(t.Body)) / 2
		}
		st := styleBase
		if r, ok := v.fig.HitTest(t.X, t.Y); ok {
			st = fills[r]
		}
		if t.Bold {
			st = st.Bold(true)
		}
		v.putString(col, row, t.Body, st)
	}

	if v.tooltip != "" {
		v.drawTooltip()
	}
	v.putString(0, v.height-1, helpText, styleHelp)
	v.screen.Show()
}

// drawTooltip places a wrapped label box next to the pointer, kept on screen.
func (v *Viewer) drawTooltip() {
	lines := wrap(v.tooltip, tooltipWidth)
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	w += 2

	col, row := v.mouseX+2, v.mouseY+1
	if col+w > v.width {
		col = v.mouseX - w - 1
	}
	if col < 0 {
		col = 0
	}
	if row+len(lines) > v.plotRows() {
		row = v.mouseY - len(lines)
	}
	if row < 0 {
		row = 0
	}

	for i, l := range lines {
		pad := strings.Repeat(" ", w-len([]rune(l))-1)
		v.putString(col, row+i, " "+l+pad, styleTooltip)
	}
}

func (v *Viewer) putString(col, row int, s string, st tcell.Style) {
	if row < 0 || row >= v.height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < v.width {
			v.screen.SetContent(col, row, r, nil, st)
		}
		col++
	}
}

// cellStyle picks a background for the fill and a readable foreground.
func cellStyle(f colormap.Fill) tcell.Style {
	if !f.Valid {
		return styleUnfill
	}
	r, g, b := f.Color.RGB255()
	fg := tcell.ColorBlack
	if l, _, _ := f.Color.Lab(); l < 0.5 {
		fg = tcell.ColorWhite
	}
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b))).Foreground(fg)
}

// wrap breaks s into lines of at most width runes on word boundaries.
func wrap(s string, width int) []string {
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(s) {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(word)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
