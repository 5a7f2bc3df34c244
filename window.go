package sheetgrid

// Anchor is the logical index and pixel offset of the first visible row and
// column. It is the only state an incremental scroll needs.
type Anchor struct {
	Row          int
	RowOffset    float64
	Column       int
	ColumnOffset float64
}

// DefaultAnchor places row 1 and column 1 right below and beside the header band.
func DefaultAnchor(cfg Config) Anchor {
	return Anchor{Row: 1, RowOffset: cfg.HeaderHeight, Column: 1, ColumnOffset: cfg.HeaderWidth}
}

// Row is a visible row. Rect is its header rectangle: Y/Height along the axis,
// X=0 and Width=HeaderWidth.
type Row struct {
	Index int
	Rect
}

// Column is a visible column. Rect is its header rectangle: X/Width along the
// axis, Y=0 and Height=HeaderHeight.
type Column struct {
	Index int
	Rect
}

// Cell is a visible cell: one visible row crossed with one visible column.
type Cell struct {
	Address
	Rect
}

// Window is the materialized set of rows, columns and cells intersecting the
// viewport. Rows and Columns are sorted by index and by pixel offset.
type Window struct {
	Rows    []Row
	Columns []Column
	Cells   []Cell
}

// Empty reports whether the window has no rows or no columns.
func (w Window) Empty() bool {
	return len(w.Rows) == 0 || len(w.Columns) == 0
}

// Anchor derives the anchor from the first visible row and column.
func (w Window) Anchor() (Anchor, bool) {
	if w.Empty() {
		return Anchor{}, false
	}
	return Anchor{
		Row:          w.Rows[0].Index,
		RowOffset:    w.Rows[0].Y,
		Column:       w.Columns[0].Index,
		ColumnOffset: w.Columns[0].X,
	}, true
}

// Cell returns the visible cell at addr.
func (w Window) Cell(addr Address) (Cell, bool) {
	r, okRow := w.rowPos(addr.Row)
	c, okCol := w.columnPos(addr.Column)
	if !okRow || !okCol {
		return Cell{}, false
	}
	return w.Cells[r*len(w.Columns)+c], true
}

func (w Window) rowPos(index int) (int, bool) {
	if len(w.Rows) == 0 {
		return 0, false
	}
	pos := index - w.Rows[0].Index
	if pos < 0 || pos >= len(w.Rows) {
		return 0, false
	}
	return pos, true
}

func (w Window) columnPos(index int) (int, bool) {
	if len(w.Columns) == 0 {
		return 0, false
	}
	pos := index - w.Columns[0].Index
	if pos < 0 || pos >= len(w.Columns) {
		return 0, false
	}
	return pos, true
}

// clone returns a deep copy so callers can hold it without seeing later rebuilds.
func (w Window) clone() Window {
	return Window{
		Rows:    append([]Row(nil), w.Rows...),
		Columns: append([]Column(nil), w.Columns...),
		Cells:   append([]Cell(nil), w.Cells...),
	}
}

// BuildWindow walks each axis from the anchor until the viewport is filled.
// An entry is kept only once its far edge clears the header band, so rows and
// columns scrolled entirely under the header are skipped.
func BuildWindow(cfg *Config, m Metrics, a Anchor, width, height float64) Window {
	if width <= 0 || height <= 0 {
		return Window{}
	}

	var w Window

	row := max(a.Row, 1)
	for y := a.RowOffset; y < height; row++ {
		h := m.SizeOf(RowAxis, row)
		if y+h > cfg.HeaderHeight {
			w.Rows = append(w.Rows, Row{
				Index: row,
				Rect:  Rect{X: 0, Y: y, Width: cfg.HeaderWidth, Height: h},
			})
		}
		y += h
	}

	col := max(a.Column, 1)
	for x := a.ColumnOffset; x < width; col++ {
		cw := m.SizeOf(ColumnAxis, col)
		if x+cw > cfg.HeaderWidth {
			w.Columns = append(w.Columns, Column{
				Index: col,
				Rect:  Rect{X: x, Y: 0, Width: cw, Height: cfg.HeaderHeight},
			})
		}
		x += cw
	}

	if w.Empty() {
		return w
	}

	w.Cells = make([]Cell, 0, len(w.Rows)*len(w.Columns))
	for _, r := range w.Rows {
		for _, c := range w.Columns {
			w.Cells = append(w.Cells, Cell{
				Address: Address{Column: c.Index, Row: r.Index},
				Rect:    Rect{X: c.X, Y: r.Y, Width: c.Width, Height: r.Height},
			})
		}
	}
	return w
}
