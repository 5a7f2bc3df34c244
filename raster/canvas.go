// Package raster implements sheetgrid.Surface on an in-memory RGBA image.
package raster

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/javajack/sheetgrid"
)

// Canvas is an RGBA drawing surface with anti-aliased fills and strokes.
type Canvas struct {
	img   *image.RGBA
	fonts *FontSet
	z     *vector.Rasterizer
}

type options struct {
	fontFiles map[string]string
	fonts     *FontSet
}

// Option configures a Canvas.
type Option func(*options)

// WithFontFile registers a TTF/OTF file for a family name such as "Open Sans".
func WithFontFile(family, path string) Option {
	return func(o *options) {
		if o.fontFiles == nil {
			o.fontFiles = make(map[string]string)
		}
		o.fontFiles[family] = path
	}
}

// WithFontSet shares an already loading FontSet between canvases.
func WithFontSet(fs *FontSet) Option {
	return func(o *options) { o.fonts = fs }
}

// New creates a width x height canvas. Fonts load in the background; see WaitFonts.
func New(width, height int, opts ...Option) *Canvas {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	fs := o.fonts
	if fs == nil {
		fs = NewFontSet(o.fontFiles)
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		fonts: fs,
		z:     vector.NewRasterizer(0, 0),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// WaitFonts blocks until the font set is ready.
func (c *Canvas) WaitFonts(ctx context.Context) error {
	return c.fonts.Wait(ctx)
}

func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Resize replaces the backing image with a blank one of the new size.
func (c *Canvas) Resize(width, height float64) {
	w := max(int(math.Ceil(width)), 0)
	h := max(int(math.Ceil(height)), 0)
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

func (c *Canvas) Clear(r sheetgrid.Rect) {
	draw.Draw(c.img, pixelRect(r).Intersect(c.img.Bounds()), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) FillRect(r sheetgrid.Rect, col color.RGBA) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	c.fillPolygon(col,
		sheetgrid.Point{X: r.X, Y: r.Y},
		sheetgrid.Point{X: r.X + r.Width, Y: r.Y},
		sheetgrid.Point{X: r.X + r.Width, Y: r.Y + r.Height},
		sheetgrid.Point{X: r.X, Y: r.Y + r.Height},
	)
}

// StrokeLine strokes a segment with butt caps, centered on the segment.
func (c *Canvas) StrokeLine(from, to sheetgrid.Point, col color.RGBA, width float64) {
	if width <= 0 {
		return
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx, ny := -dy/length*width/2, dx/length*width/2
	c.fillPolygon(col,
		sheetgrid.Point{X: from.X + nx, Y: from.Y + ny},
		sheetgrid.Point{X: to.X + nx, Y: to.Y + ny},
		sheetgrid.Point{X: to.X - nx, Y: to.Y - ny},
		sheetgrid.Point{X: from.X - nx, Y: from.Y - ny},
	)
}

// StrokeRect strokes the outline of r with square corners.
func (c *Canvas) StrokeRect(r sheetgrid.Rect, col color.RGBA, width float64) {
	if width <= 0 {
		return
	}
	hw := width / 2
	c.FillRect(sheetgrid.Rect{X: r.X - hw, Y: r.Y - hw, Width: r.Width + width, Height: width}, col)
	c.FillRect(sheetgrid.Rect{X: r.X - hw, Y: r.Y + r.Height - hw, Width: r.Width + width, Height: width}, col)
	c.FillRect(sheetgrid.Rect{X: r.X - hw, Y: r.Y + hw, Width: width, Height: r.Height - width}, col)
	c.FillRect(sheetgrid.Rect{X: r.X + r.Width - hw, Y: r.Y + hw, Width: width, Height: r.Height - width}, col)
}

func (c *Canvas) MeasureText(text string, f sheetgrid.Font) float64 {
	if text == "" {
		return 0
	}
	return fromFixed(font.MeasureString(c.fonts.Face(f), text))
}

func (c *Canvas) DrawText(text string, at sheetgrid.Point, f sheetgrid.Font, col color.RGBA, anchor sheetgrid.TextAnchor) {
	if text == "" {
		return
	}
	face := c.fonts.Face(f)
	x, y := at.X, at.Y
	if anchor == sheetgrid.AnchorCenter {
		m := face.Metrics()
		x -= fromFixed(font.MeasureString(face, text)) / 2
		y += (fromFixed(m.Ascent) - fromFixed(m.Descent)) / 2
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(text)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := c.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fillPolygon rasterizes a closed polygon. The rasterizer covers only the
// polygon's pixel bounds, clipped to the image.
func (c *Canvas) fillPolygon(col color.RGBA, pts ...sheetgrid.Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bounds := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	).Intersect(c.img.Bounds())
	if bounds.Empty() {
		return
	}

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	clamp := func(p sheetgrid.Point) (float32, float32) {
		return float32(math.Max(0, math.Min(w, p.X-ox))), float32(math.Max(0, math.Min(h, p.Y-oy)))
	}

	c.z.Reset(bounds.Dx(), bounds.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(clamp(pts[0]))
	for _, p := range pts[1:] {
		c.z.LineTo(clamp(p))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, bounds, image.NewUniform(col), image.Point{})
}

func pixelRect(r sheetgrid.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.Width)), int(math.Ceil(r.Y+r.Height)),
	)
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
