package sheetgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_OverrideWins(t *testing.T) {
	cfg := DefaultConfig()
	sizes := fixedSizes{rows: map[int]float64{4: 80}, cols: map[int]float64{2: 33}}

	m := NewMetrics(&cfg, sizes)
	assert.Equal(t, 80.0, m.SizeOf(RowAxis, 4))
	assert.Equal(t, 33.0, m.SizeOf(ColumnAxis, 2))
	assert.Equal(t, 25.0, m.SizeOf(RowAxis, 5))
	assert.Equal(t, 100.0, m.SizeOf(ColumnAxis, 1))

	cfg.CellHeight = 40
	cfg.CellWidth = 120
	assert.Equal(t, 80.0, m.SizeOf(RowAxis, 4))
	assert.Equal(t, 33.0, m.SizeOf(ColumnAxis, 2))
	assert.Equal(t, 40.0, m.SizeOf(RowAxis, 5))
	assert.Equal(t, 120.0, m.SizeOf(ColumnAxis, 1))
}

func TestMetrics_ZeroOverrideIsTrusted(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMetrics(&cfg, fixedSizes{rows: map[int]float64{2: 0}})
	assert.Equal(t, 0.0, m.SizeOf(RowAxis, 2))
}

func TestMetrics_NilSizes(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMetrics(&cfg, nil)
	assert.Equal(t, 25.0, m.SizeOf(RowAxis, 1_000_000))
	assert.Equal(t, 100.0, m.SizeOf(ColumnAxis, 1_000_000))
}

func TestBuildWindow_DefaultViewport(t *testing.T) {
	cfg := DefaultConfig()
	w := BuildWindow(&cfg, NewMetrics(&cfg, nil), DefaultAnchor(cfg), 300, 300)

	require.Len(t, w.Rows, 11)
	for i, r := range w.Rows {
		assert.Equal(t, i+1, r.Index)
		assert.Equal(t, 25+25*float64(i), r.Y)
		assert.Equal(t, 25.0, r.Height)
		assert.Equal(t, 0.0, r.X)
		assert.Equal(t, 46.0, r.Width)
	}

	require.Len(t, w.Columns, 3)
	wantX := []float64{46, 146, 246}
	for i, c := range w.Columns {
		assert.Equal(t, i+1, c.Index)
		assert.Equal(t, wantX[i], c.X)
		assert.Equal(t, 100.0, c.Width)
		assert.Equal(t, 0.0, c.Y)
		assert.Equal(t, 25.0, c.Height)
	}

	require.Len(t, w.Cells, 33)
	assert.Equal(t, Cell{Address: Address{Column: 1, Row: 1}, Rect: Rect{X: 46, Y: 25, Width: 100, Height: 25}}, w.Cells[0])
	assert.Equal(t, Cell{Address: Address{Column: 3, Row: 11}, Rect: Rect{X: 246, Y: 275, Width: 100, Height: 25}}, w.Cells[32])
}

func TestBuildWindow_OffsetsContiguous(t *testing.T) {
	cfg := DefaultConfig()
	sizes := fixedSizes{
		rows: map[int]float64{3: 40, 5: 10, 6: 71},
		cols: map[int]float64{2: 30, 4: 250},
	}
	w := BuildWindow(&cfg, NewMetrics(&cfg, sizes), DefaultAnchor(cfg), 700, 400)
	require.NotEmpty(t, w.Rows)
	require.NotEmpty(t, w.Columns)

	for i := 1; i < len(w.Rows); i++ {
		prev, cur := w.Rows[i-1], w.Rows[i]
		assert.Equal(t, prev.Index+1, cur.Index)
		assert.Equal(t, prev.Y+prev.Height, cur.Y)
		assert.Greater(t, cur.Y, prev.Y)
	}
	for i := 1; i < len(w.Columns); i++ {
		prev, cur := w.Columns[i-1], w.Columns[i]
		assert.Equal(t, prev.Index+1, cur.Index)
		assert.Equal(t, prev.X+prev.Width, cur.X)
		assert.Greater(t, cur.X, prev.X)
	}

	last := w.Rows[len(w.Rows)-1]
	assert.Less(t, last.Y, 400.0)
	assert.GreaterOrEqual(t, last.Y+last.Height, 400.0)
	assert.Equal(t, 40.0, w.Rows[2].Height)
	assert.Equal(t, 30.0, w.Columns[1].Width)
}

func TestBuildWindow_ZeroViewport(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMetrics(&cfg, nil)

	w := BuildWindow(&cfg, m, DefaultAnchor(cfg), 0, 300)
	assert.True(t, w.Empty())
	assert.Empty(t, w.Rows)
	assert.Empty(t, w.Cells)

	w = BuildWindow(&cfg, m, DefaultAnchor(cfg), 300, 0)
	assert.True(t, w.Empty())
	assert.Empty(t, w.Columns)
}

func TestBuildWindow_SkipsRowsUnderHeader(t *testing.T) {
	cfg := DefaultConfig()
	a := Anchor{Row: 1, RowOffset: -30, Column: 1, ColumnOffset: -60}
	w := BuildWindow(&cfg, NewMetrics(&cfg, nil), a, 300, 300)

	// Row 1 spans -30..-5 and row 2 -5..20, both hidden under the 25px band.
	require.NotEmpty(t, w.Rows)
	assert.Equal(t, 3, w.Rows[0].Index)
	assert.Equal(t, 20.0, w.Rows[0].Y)

	// Column 1 spans -60..40, still under the 46px band; column 2 starts at 40.
	require.NotEmpty(t, w.Columns)
	assert.Equal(t, 2, w.Columns[0].Index)
	assert.Equal(t, 40.0, w.Columns[0].X)

	anchor, ok := w.Anchor()
	require.True(t, ok)
	assert.Equal(t, Anchor{Row: 3, RowOffset: 20, Column: 2, ColumnOffset: 40}, anchor)
}

func TestBuildWindow_ClampsAnchorIndex(t *testing.T) {
	cfg := DefaultConfig()
	a := Anchor{Row: 0, RowOffset: 25, Column: -3, ColumnOffset: 46}
	w := BuildWindow(&cfg, NewMetrics(&cfg, nil), a, 300, 300)
	require.False(t, w.Empty())
	assert.Equal(t, 1, w.Rows[0].Index)
	assert.Equal(t, 1, w.Columns[0].Index)
}

func TestWindow_Cell(t *testing.T) {
	cfg := DefaultConfig()
	w := BuildWindow(&cfg, NewMetrics(&cfg, nil), DefaultAnchor(cfg), 300, 300)

	c, ok := w.Cell(Address{Column: 2, Row: 3})
	require.True(t, ok)
	assert.Equal(t, Rect{X: 146, Y: 75, Width: 100, Height: 25}, c.Rect)

	_, ok = w.Cell(Address{Column: 4, Row: 1})
	assert.False(t, ok)
	_, ok = w.Cell(Address{Column: 1, Row: 12})
	assert.False(t, ok)
}
