package sheetgrid

// Selection is the active selection. At most one of Cell, Column and Row is set;
// Column and Row are 0 when inactive.
type Selection struct {
	Cell   *Cell
	Column int
	Row    int

	// Edit is the cell opened for editing by a double click, with its rect
	// clamped to the content band.
	Edit *Cell
	// ContextMenu is where a context menu was requested.
	ContextMenu *Point
}

// Active reports whether a cell, column or row is selected.
func (s Selection) Active() bool {
	return s.Cell != nil || s.Column != 0 || s.Row != 0
}

// RowHighlighted reports whether the header of row should be highlighted. A
// whole-column selection highlights every row header.
func (s Selection) RowHighlighted(row int) bool {
	if s.Column != 0 {
		return true
	}
	if s.Row != 0 && s.Row == row {
		return true
	}
	return s.Cell != nil && s.Cell.Row == row
}

// ColumnHighlighted reports whether the header of col should be highlighted. A
// whole-row selection highlights every column header.
func (s Selection) ColumnHighlighted(col int) bool {
	if s.Row != 0 {
		return true
	}
	if s.Column != 0 && s.Column == col {
		return true
	}
	return s.Cell != nil && s.Cell.Column == col
}

// CellTinted reports whether a body cell lies in the selected row or column.
// The body is only repainted on a full paint, so the drawn tint can lag behind
// the selection until the next scroll, resize or Paint.
func (s Selection) CellTinted(addr Address) bool {
	return (s.Row != 0 && s.Row == addr.Row) || (s.Column != 0 && s.Column == addr.Column)
}

func (s Selection) clone() Selection {
	if s.Cell != nil {
		c := *s.Cell
		s.Cell = &c
	}
	if s.Edit != nil {
		e := *s.Edit
		s.Edit = &e
	}
	if s.ContextMenu != nil {
		p := *s.ContextMenu
		s.ContextMenu = &p
	}
	return s
}
