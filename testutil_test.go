package sheetgrid

import (
	"context"
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

type opKind int

const (
	opClear opKind = iota
	opFill
	opLine
	opRect
	opText
)

// op is one recorded drawing call.
type op struct {
	kind   opKind
	rect   Rect
	from   Point
	to     Point
	color  color.RGBA
	width  float64
	text   string
	at     Point
	font   Font
	anchor TextAnchor
}

// recorder is a Surface that records every call. Text measures half the font
// size per rune so layouts are easy to predict.
type recorder struct {
	w, h    float64
	ops     []op
	resizes int

	fontsReady chan struct{}
}

func newRecorder(w, h float64) *recorder {
	return &recorder{w: w, h: h}
}

func (r *recorder) Size() (float64, float64) { return r.w, r.h }

func (r *recorder) Resize(w, h float64) {
	r.w, r.h = w, h
	r.resizes++
}

func (r *recorder) Clear(rect Rect) {
	r.ops = append(r.ops, op{kind: opClear, rect: rect})
}

func (r *recorder) FillRect(rect Rect, c color.RGBA) {
	r.ops = append(r.ops, op{kind: opFill, rect: rect, color: c})
}

func (r *recorder) StrokeLine(from, to Point, c color.RGBA, width float64) {
	r.ops = append(r.ops, op{kind: opLine, from: from, to: to, color: c, width: width})
}

func (r *recorder) StrokeRect(rect Rect, c color.RGBA, width float64) {
	r.ops = append(r.ops, op{kind: opRect, rect: rect, color: c, width: width})
}

func (r *recorder) MeasureText(text string, f Font) float64 {
	return float64(utf8.RuneCountInString(text)) * f.Size / 2
}

func (r *recorder) DrawText(text string, at Point, f Font, c color.RGBA, anchor TextAnchor) {
	r.ops = append(r.ops, op{kind: opText, text: text, at: at, font: f, color: c, anchor: anchor})
}

func (r *recorder) WaitFonts(ctx context.Context) error {
	if r.fontsReady == nil {
		return nil
	}
	select {
	case <-r.fontsReady:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *recorder) reset() { r.ops = nil }

func (r *recorder) kinds() []opKind {
	kinds := make([]opKind, len(r.ops))
	for i, o := range r.ops {
		kinds[i] = o.kind
	}
	return kinds
}

// texts returns every text op keyed by its string.
func (r *recorder) texts() map[string]op {
	m := make(map[string]op)
	for _, o := range r.ops {
		if o.kind == opText {
			m[o.text] = o
		}
	}
	return m
}

// fillAt returns the colour of the last fill with exactly this rect.
func (r *recorder) fillAt(rect Rect) (color.RGBA, bool) {
	for i := len(r.ops) - 1; i >= 0; i-- {
		if o := r.ops[i]; o.kind == opFill && o.rect == rect {
			return o.color, true
		}
	}
	return color.RGBA{}, false
}

// newTestSession mounts a recorder of the given size and runs the first paint.
func newTestSession(t *testing.T, src Source, w, h float64, opts ...Option) (*Session, *recorder) {
	t.Helper()
	rec := newRecorder(w, h)
	s, err := NewSession(src, append([]Option{WithSurface(rec)}, opts...)...)
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()))
	return s, rec
}

// fixedSizes is a read-only SizeSource returning whatever it holds, zero included.
type fixedSizes struct {
	rows map[int]float64
	cols map[int]float64
}

func (f fixedSizes) RowHeight(row int) (float64, bool) {
	h, ok := f.rows[row]
	return h, ok
}

func (f fixedSizes) ColumnWidth(col int) (float64, bool) {
	w, ok := f.cols[col]
	return w, ok
}

func (f fixedSizes) CellContent(Address) (CellData, bool) { return CellData{}, false }
