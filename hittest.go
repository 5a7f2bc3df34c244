package sheetgrid

// ResolveAddress returns the address of the visible cell under (x, y). It binary
// searches the pixel-sorted rows for the greatest Y <= y and the columns for the
// greatest X <= x. Points above or left of the first entry, or past the far edge
// of the last one, resolve to nothing.
func (w Window) ResolveAddress(x, y float64) (Address, bool) {
	row := searchRows(w.Rows, y)
	if row == 0 {
		return Address{}, false
	}
	col := searchColumns(w.Columns, x)
	if col == 0 {
		return Address{}, false
	}
	return Address{Column: col, Row: row}, true
}

// HeaderHit describes a point inside the header bands.
type HeaderHit struct {
	Axis  Axis
	Index int
}

// ResolveHeader returns the column header under a point in the column-label
// band, or the row header under a point in the row-label band. The corner box
// belongs to neither.
func (w Window) ResolveHeader(cfg *Config, x, y float64) (HeaderHit, bool) {
	inColumnBand := y >= 0 && y < cfg.HeaderHeight
	inRowBand := x >= 0 && x < cfg.HeaderWidth
	switch {
	case inColumnBand && inRowBand:
		return HeaderHit{}, false
	case inColumnBand:
		if col := searchColumns(w.Columns, x); col != 0 {
			return HeaderHit{Axis: ColumnAxis, Index: col}, true
		}
	case inRowBand:
		if row := searchRows(w.Rows, y); row != 0 {
			return HeaderHit{Axis: RowAxis, Index: row}, true
		}
	}
	return HeaderHit{}, false
}

// searchRows returns 0 when no row contains y; 0 is never a valid index.
func searchRows(rows []Row, y float64) int {
	left, right := 0, len(rows)-1
	found := -1
	for left <= right {
		mid := (left + right) / 2
		if rows[mid].Y <= y {
			found = mid
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	if found < 0 {
		return 0
	}
	r := rows[found]
	if y >= r.Y+r.Height {
		return 0
	}
	return r.Index
}

func searchColumns(cols []Column, x float64) int {
	left, right := 0, len(cols)-1
	found := -1
	for left <= right {
		mid := (left + right) / 2
		if cols[mid].X <= x {
			found = mid
			left = mid + 1
		} else {
			right = mid - 1
		}
	}
	if found < 0 {
		return 0
	}
	c := cols[found]
	if x >= c.X+c.Width {
		return 0
	}
	return c.Index
}
