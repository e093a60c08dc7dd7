// Package colormap maps scores onto a sequential color scale.
package colormap

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Keypoint is one stop of a gradient. Pos is in [0, 1].
type Keypoint struct {
	Col colorful.Color
	Pos float64
}

// Gradient is a list of keypoints sorted by Pos.
type Gradient []Keypoint

// At returns the HCL blend between the two keypoints around t.
// Values outside [0, 1] take the end colors.
func (g Gradient) At(t float64) colorful.Color {
	if t <= g[0].Pos {
		return g[0].Col
	}
	for i := 0; i < len(g)-1; i++ {
		c1, c2 := g[i], g[i+1]
		if c1.Pos <= t && t <= c2.Pos {
			t := (t - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Col.BlendHcl(c2.Col, t).Clamped()
		}
	}
	return g[len(g)-1].Col
}

// MustParseHex parses "#rrggbb" and panics on malformed input. It is meant for color table literals.
func MustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

// YlOrRd is the ColorBrewer yellow-orange-red ramp, light to dark.
func YlOrRd() Gradient {
	return Gradient{
		{MustParseHex("#FFFFCC"), 0.000},
		{MustParseHex("#FFEDA0"), 0.125},
		{MustParseHex("#FED976"), 0.250},
		{MustParseHex("#FEB24C"), 0.375},
		{MustParseHex("#FD8D3C"), 0.500},
		{MustParseHex("#FC4E2A"), 0.625},
		{MustParseHex("#E31A1C"), 0.750},
		{MustParseHex("#BD0026"), 0.875},
		{MustParseHex("#800026"), 1.000},
	}
}

// Fill is a cell fill color. The zero value is None.
type Fill struct {
	Color colorful.Color
	Valid bool
}

// None means the cell is left unfilled.
var None = Fill{}

// Hex returns "#rrggbb", or "none" for an unfilled cell (the SVG keyword).
func (f Fill) Hex() string {
	if !f.Valid {
		return "none"
	}
	return f.Color.Hex()
}

// RGBA returns the fill as an 8-bit color; None is fully transparent.
func (f Fill) RGBA() color.RGBA {
	if !f.Valid {
		return color.RGBA{}
	}
	r, g, b := f.Color.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Scale maps values in [Min, Max) onto Gradient. Values below Min are unfilled.
type Scale struct {
	Gradient Gradient
	Min, Max float64
}

// Default returns the YlOrRd scale normalized over [1, 10).
func Default() Scale {
	return Scale{Gradient: YlOrRd(), Min: 1, Max: 10}
}

// Normalize returns (v-Min)/(Max-Min). It does not clamp.
func (s Scale) Normalize(v float64) float64 {
	return (v - s.Min) / (s.Max - s.Min)
}

// Map returns the fill for score.
func (s Scale) Map(score int) Fill {
	t := s.Normalize(float64(score))
	if t < 0 {
		return None
	}
	return Fill{Color: s.Gradient.At(t), Valid: true}
}
