package sheetgrid

// Click selects whatever lies under a viewport pixel: a column or row header in
// the header bands, otherwise the cell. A miss leaves the selection unchanged.
func (s *Session) Click(x, y float64) bool {
	sel, ok := s.selectionAt(x, y)
	if !ok {
		return false
	}
	s.sel = sel
	s.selectionChanged()
	return true
}

// ContextMenu selects like Click and records where the menu was requested. The
// menu point is recorded on a miss too, leaving the selection unchanged; the
// result reports whether anything was selected.
func (s *Session) ContextMenu(x, y float64) bool {
	sel, ok := s.selectionAt(x, y)
	if !ok {
		sel = s.sel
	}
	sel.ContextMenu = &Point{X: x, Y: y}
	s.sel = sel
	s.selectionChanged()
	return ok
}

func (s *Session) selectionAt(x, y float64) (Selection, bool) {
	if hit, ok := s.window.ResolveHeader(&s.cfg, x, y); ok {
		if hit.Axis == ColumnAxis {
			return Selection{Column: hit.Index}, true
		}
		return Selection{Row: hit.Index}, true
	}
	addr, ok := s.window.ResolveAddress(x, y)
	if !ok {
		return Selection{}, false
	}
	return s.cellSelection(addr), true
}

func (s *Session) cellSelection(addr Address) Selection {
	cell, ok := s.window.Cell(addr)
	if !ok {
		cell = Cell{Address: addr}
	}
	return Selection{Cell: &cell}
}

// DoubleClick opens the selected cell for editing. The edit rect is clamped into
// the content band so a partially scrolled cell is edited in full view.
func (s *Session) DoubleClick() bool {
	if s.sel.Cell == nil {
		return false
	}
	edit := *s.sel.Cell
	edit.X = max(s.cfg.HeaderWidth, edit.X)
	edit.Y = max(s.cfg.HeaderHeight, edit.Y)
	s.sel.Cell = nil
	s.sel.Edit = &edit
	s.selectionChanged()
	return true
}

// SelectCell makes addr the active cell, clearing column, row, edit and menu state.
func (s *Session) SelectCell(addr Address) {
	if !addr.Valid() {
		return
	}
	s.sel = s.cellSelection(addr)
	s.selectionChanged()
}

// SelectColumn makes col the active whole-column selection.
func (s *Session) SelectColumn(col int) {
	if col < 1 {
		return
	}
	s.sel = Selection{Column: col}
	s.selectionChanged()
}

// SelectRow makes row the active whole-row selection.
func (s *Session) SelectRow(row int) {
	if row < 1 {
		return
	}
	s.sel = Selection{Row: row}
	s.selectionChanged()
}

// ClearSelection drops every selection, edit and menu state.
func (s *Session) ClearSelection() {
	s.sel = Selection{}
	s.selectionChanged()
}

// selectionChanged repaints the headers only; the window is not rebuilt.
func (s *Session) selectionChanged() {
	switch {
	case s.sel.Cell != nil:
		s.logger.Debugf("selected cell %s", s.sel.Cell.Address)
	case s.sel.Column != 0:
		s.logger.Debugf("selected column %s", ColumnTitle(s.sel.Column))
	case s.sel.Row != 0:
		s.logger.Debugf("selected row %d", s.sel.Row)
	default:
		s.logger.Debug("selection cleared")
	}
	s.PaintHeaders()
	for _, l := range s.listeners {
		l.SelectionChanged(s.sel.clone())
	}
}
