package sheetgrid

import (
	"context"
	"image/color"
)

// Point is a pixel position relative to the viewport.
type Point struct {
	X, Y float64
}

// Rect is a pixel rectangle relative to the viewport.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside r (right and bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Font is a resolved font request.
type Font struct {
	Family string
	Size   float64 // pixels
	Bold   bool
	Italic bool
}

// TextAnchor controls how DrawText interprets its position.
type TextAnchor int

const (
	// AnchorBaseline places the left end of the baseline at the point.
	AnchorBaseline TextAnchor = iota
	// AnchorCenter centers the text horizontally and vertically on the point.
	AnchorCenter
)

// Surface is the 2D drawing target. Only filled rectangles, stroked segments and
// measured/drawn text are needed.
type Surface interface {
	Size() (width, height float64)
	Clear(r Rect)
	FillRect(r Rect, c color.RGBA)
	StrokeLine(from, to Point, c color.RGBA, width float64)
	StrokeRect(r Rect, c color.RGBA, width float64)
	MeasureText(text string, f Font) float64
	DrawText(text string, at Point, f Font, c color.RGBA, anchor TextAnchor)
}

// Resizer is implemented by surfaces whose backing store follows the viewport.
type Resizer interface {
	Resize(width, height float64)
}

// FontWaiter is implemented by surfaces that load fonts asynchronously.
type FontWaiter interface {
	WaitFonts(ctx context.Context) error
}
