package sheetgrid

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellHeight = 0
	_, err := NewSession(nil, WithConfig(cfg))
	assert.ErrorIs(t, err, ErrInvalidSize)

	cfg = DefaultConfig()
	cfg.HeaderWidth = -1
	_, err = NewSession(nil, WithConfig(cfg))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestNewSession_BadRule(t *testing.T) {
	_, err := NewSession(nil, WithBackgroundRule("row +", white))
	assert.Error(t, err)

	_, err = NewSession(nil, WithBackgroundRule("row + 1", white))
	assert.Error(t, err, "non-bool condition")

	_, err = NewSession(nil, WithBackgroundRule("", white))
	assert.Error(t, err)
}

func TestSession_MountThenStart(t *testing.T) {
	s, err := NewSession(nil)
	require.NoError(t, err)
	require.NoError(t, s.Start(context.Background()), "start without a surface is a no-op")
	assert.True(t, s.Window().Empty())

	rec := newRecorder(300, 300)
	s.Mount(rec)
	require.True(t, s.Mounted())
	require.NoError(t, s.Start(context.Background()))

	w := s.Window()
	assert.Len(t, w.Rows, 11)
	assert.Len(t, w.Columns, 3)
	assert.Equal(t, 1, rec.resizes)
	assert.Equal(t, opClear, rec.ops[0].kind)
}

func TestSession_StartWaitsForFonts(t *testing.T) {
	rec := newRecorder(300, 300)
	rec.fontsReady = make(chan struct{})
	s, err := NewSession(nil, WithSurface(rec))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Start(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.ops, "nothing is painted before fonts load")

	close(rec.fontsReady)
	require.NoError(t, s.Start(context.Background()))
	assert.NotEmpty(t, rec.ops)
}

func TestSession_Resize(t *testing.T) {
	s, rec := newTestSession(t, nil, 300, 300)

	s.Resize(500, 100)
	w := s.Window()
	assert.Len(t, w.Rows, 3)
	assert.Len(t, w.Columns, 5)
	assert.Len(t, w.Cells, 15)
	assert.Equal(t, 2, rec.resizes)
	assert.Equal(t, DefaultAnchor(s.Config()), s.Anchor())
}

func TestSession_ResizeAxis(t *testing.T) {
	src := NewMemorySource()
	s, _ := newTestSession(t, src, 300, 300)

	require.NoError(t, s.ResizeAxis(RowAxis, 1, 50))
	w := s.Window()
	assert.Equal(t, 50.0, w.Rows[0].Height)
	assert.Equal(t, 75.0, w.Rows[1].Y)

	require.NoError(t, s.ResizeAxis(ColumnAxis, 1, 20))
	w = s.Window()
	assert.Equal(t, 66.0, w.Columns[1].X)

	err := s.ResizeAxis(RowAxis, 2, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
	err = s.ResizeAxis(ColumnAxis, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestSession_ResizeAxisReadOnlySource(t *testing.T) {
	s, _ := newTestSession(t, fixedSizes{}, 300, 300)
	err := s.ResizeAxis(RowAxis, 1, 40)
	assert.ErrorIs(t, err, ErrReadOnlySource)
}

func TestSession_SelectClearsOthers(t *testing.T) {
	s, _ := newTestSession(t, nil, 300, 300)

	s.SelectColumn(2)
	sel := s.Selection()
	assert.Equal(t, 2, sel.Column)
	assert.Nil(t, sel.Cell)

	s.SelectCell(Address{Column: 1, Row: 2})
	sel = s.Selection()
	require.NotNil(t, sel.Cell)
	assert.Equal(t, Rect{X: 46, Y: 50, Width: 100, Height: 25}, sel.Cell.Rect)
	assert.Zero(t, sel.Column)
	assert.Zero(t, sel.Row)

	s.SelectRow(4)
	sel = s.Selection()
	assert.Equal(t, 4, sel.Row)
	assert.Nil(t, sel.Cell)
	assert.Zero(t, sel.Column)

	s.ClearSelection()
	assert.False(t, s.Selection().Active())
}

func TestSession_SelectIgnoresInvalid(t *testing.T) {
	s, _ := newTestSession(t, nil, 300, 300)
	s.SelectRow(3)

	s.SelectCell(Address{})
	s.SelectColumn(0)
	s.SelectRow(-1)
	assert.Equal(t, 3, s.Selection().Row)
}

func TestSession_SelectRepaintsHeadersOnly(t *testing.T) {
	s, rec := newTestSession(t, nil, 300, 300)
	rec.reset()

	s.SelectRow(2)

	assert.NotContains(t, rec.kinds(), opClear)
	fills := 0
	for _, o := range rec.ops {
		if o.kind == opFill {
			fills++
		}
	}
	assert.Equal(t, 11+3+1, fills, "row headers, column headers and the corner box")
	_, ok := rec.fillAt(Rect{X: 46, Y: 50, Width: 100, Height: 25})
	assert.False(t, ok, "body cells are left alone")
}

func TestSession_ListenerNotified(t *testing.T) {
	var got []Selection
	s, _ := newTestSession(t, nil, 300, 300, WithSelectionListener(SelectionFunc(func(sel Selection) {
		got = append(got, sel)
	})))

	s.SelectColumn(3)
	require.True(t, s.ContextMenu(150, 60))
	s.ClearSelection()

	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Column)
	require.NotNil(t, got[1].Cell)
	assert.Equal(t, Address{Column: 2, Row: 2}, got[1].Cell.Address)
	require.NotNil(t, got[1].ContextMenu)
	assert.Equal(t, Point{X: 150, Y: 60}, *got[1].ContextMenu)
	assert.False(t, got[2].Active())
}

func TestSession_Click(t *testing.T) {
	s, _ := newTestSession(t, nil, 300, 300)

	require.True(t, s.Click(150, 60))
	sel := s.Selection()
	require.NotNil(t, sel.Cell)
	assert.Equal(t, Address{Column: 2, Row: 2}, sel.Cell.Address)

	require.True(t, s.Click(150, 10))
	assert.Equal(t, Selection{Column: 2}, s.Selection())

	require.True(t, s.Click(20, 60))
	assert.Equal(t, Selection{Row: 2}, s.Selection())

	assert.False(t, s.Click(20, 10), "corner box")
	assert.False(t, s.Click(350, 60), "outside the window")
	assert.Equal(t, Selection{Row: 2}, s.Selection())
}

func TestSession_ContextMenuMissRecordsPoint(t *testing.T) {
	var notified int
	s, _ := newTestSession(t, nil, 300, 300, WithSelectionListener(SelectionFunc(func(Selection) {
		notified++
	})))
	s.SelectRow(3)

	assert.False(t, s.ContextMenu(10, 10))
	sel := s.Selection()
	require.NotNil(t, sel.ContextMenu)
	assert.Equal(t, Point{X: 10, Y: 10}, *sel.ContextMenu)
	assert.Equal(t, 3, sel.Row, "a miss keeps the selection")
	assert.Equal(t, 2, notified)
}

func TestSession_DoubleClickClampsEditRect(t *testing.T) {
	s, _ := newTestSession(t, nil, 300, 300)

	assert.False(t, s.DoubleClick(), "nothing selected")

	s.ScrollBy(0, 10)
	require.True(t, s.Click(100, 30))
	sel := s.Selection()
	require.NotNil(t, sel.Cell)
	assert.Equal(t, 15.0, sel.Cell.Y)

	require.True(t, s.DoubleClick())
	sel = s.Selection()
	assert.Nil(t, sel.Cell)
	require.NotNil(t, sel.Edit)
	assert.Equal(t, Address{Column: 1, Row: 1}, sel.Edit.Address)
	assert.Equal(t, 25.0, sel.Edit.Y)
	assert.Equal(t, 46.0, sel.Edit.X)
}

func TestSession_SelectionFollowsScroll(t *testing.T) {
	s, _ := newTestSession(t, nil, 300, 300)
	s.SelectCell(Address{Column: 2, Row: 3})
	require.Equal(t, 75.0, s.Selection().Cell.Y)

	s.ScrollBy(0, 25)
	assert.Equal(t, 50.0, s.Selection().Cell.Y)

	s.ScrollBy(0, 1000)
	sel := s.Selection()
	require.NotNil(t, sel.Cell)
	assert.Equal(t, Address{Column: 2, Row: 3}, sel.Cell.Address)
	assert.Equal(t, Rect{}, sel.Cell.Rect, "off-screen cell keeps its address only")

	s.ScrollBy(0, -1025)
	assert.Equal(t, 75.0, s.Selection().Cell.Y)
}

func TestSession_SnapshotsAreCopies(t *testing.T) {
	s, _ := newTestSession(t, nil, 300, 300)
	s.SelectCell(Address{Column: 1, Row: 1})

	sel := s.Selection()
	sel.Cell.X = 999
	assert.Equal(t, 46.0, s.Selection().Cell.X)

	w := s.Window()
	w.Rows[0].Index = 99
	w.Cells[0].Row = 99
	assert.Equal(t, 1, s.Window().Rows[0].Index)
	assert.Equal(t, 1, s.Window().Cells[0].Row)

	cfg := s.Config()
	cfg.Fonts["open-sans"] = "Comic Sans"
	assert.Equal(t, "Open Sans", s.Config().FontFamily(""))
}
