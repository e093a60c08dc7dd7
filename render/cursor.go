package render

// Cursor tracks which rect of a Figure is under the pointer and notifies
// handlers when that changes. A nil rect means the pointer left all rects.
type Cursor struct {
	fig      *Figure
	current  *Rect
	handlers []func(*Rect)
}

func NewCursor(fig *Figure) *Cursor {
	return &Cursor{fig: fig}
}

// Connect registers fn to be called on every hover change.
func (c *Cursor) Connect(fn func(*Rect)) {
	c.handlers = append(c.handlers, fn)
}

// Move reports the pointer at (x, y) in data units.
func (c *Cursor) Move(x, y float64) {
	r, _ := c.fig.HitTest(x, y)
	c.set(r)
}

// Leave reports the pointer outside the figure.
func (c *Cursor) Leave() {
	c.set(nil)
}

// Current returns the hovered rect, or nil.
func (c *Cursor) Current() *Rect {
	return c.current
}

func (c *Cursor) set(r *Rect) {
	if r == c.current {
		return
	}
	c.current = r
	for _, fn := range c.handlers {
		fn(r)
	}
}
