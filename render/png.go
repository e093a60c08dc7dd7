package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// PNGOptions controls raster output.
type PNGOptions struct {
	PixelsPerUnit float64 // defaults to 100
}

func (o PNGOptions) scale() float64 {
	if o.PixelsPerUnit <= 0 {
		return 100
	}
	return o.PixelsPerUnit
}

// WritePNG rasterizes fig and encodes it as PNG.
func WritePNG(w io.Writer, fig *Figure, opts PNGOptions) error {
	img, err := Rasterize(fig, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Rasterize draws fig onto a white RGBA image.
func Rasterize(fig *Figure, opts PNGOptions) (*image.RGBA, error) {
	k := opts.scale()
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(fig.Width*k)), int(math.Ceil(fig.Height*k))))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	for i := range fig.Rects {
		drawRect(img, fig, &fig.Rects[i], k)
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}
	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)

	faces := make(map[faceKey]font.Face)
	for _, t := range fig.Texts {
		size := t.Size / PointsPerUnit * k
		f := fonts.regular
		if t.Bold {
			f = fonts.bold
		}
		key := faceKey{size: size, bold: t.Bold}
		face, ok := faces[key]
		if !ok {
			face = truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
			faces[key] = face
		}
		c.SetFont(f)
		c.SetFontSize(size)

		// Baseline so the glyph box is vertically centered on t.Y.
		m := face.Metrics()
		pt := fixed.Point26_6{
			X: fixed.Int26_6(t.X * k * 64),
			Y: fixed.Int26_6((fig.Height-t.Y)*k*64) + (m.Ascent-m.Descent)/2,
		}
		if t.Align == AlignCenter {
			drawer := &font.Drawer{Face: face}
			pt.X -= drawer.MeasureString(t.Body) / 2
		}
		if _, err := c.DrawString(t.Body, pt); err != nil {
			return nil, fmt.Errorf("draw %q: %w", t.Body, err)
		}
	}
	return img, nil
}

type faceKey struct {
	size float64
	bold bool
}

type fontSet struct {
	regular, bold *truetype.Font
}

func loadFonts() (fontSet, error) {
	regular, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := freetype.ParseFont(gobold.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parse bold font: %w", err)
	}
	return fontSet{regular: regular, bold: bold}, nil
}

// drawRect fills r and strokes its border with at least one pixel.
func drawRect(img *image.RGBA, fig *Figure, r *Rect, k float64) {
	x0 := int(math.Round(r.X * k))
	x1 := int(math.Round((r.X + r.W) * k))
	y0 := int(math.Round((fig.Height - r.Y - r.H) * k))
	y1 := int(math.Round((fig.Height - r.Y) * k))
	box := image.Rect(x0, y0, x1, y1)

	if r.Fill.Valid {
		draw.Draw(img, box, &image.Uniform{C: r.Fill.RGBA()}, image.Point{}, draw.Src)
	}

	edge := int(math.Max(1, math.Round(r.EdgeWidth/PointsPerUnit*k)))
	black := &image.Uniform{C: color.Black}
	draw.Draw(img, image.Rect(x0, y0, x1, y0+edge), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x0, y1-edge, x1, y1), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x0, y0, x0+edge, y1), black, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(x1-edge, y0, x1, y1), black, image.Point{}, draw.Src)
}
