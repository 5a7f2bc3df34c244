package sheetgrid

// ReanchorAxis moves an anchor (index, offset) along one axis by delta pixels.
// Positive deltas scroll away from the origin and only shift the offset; the
// window builder then skips whatever scrolled under the header band. Negative
// deltas walk the index back toward 1 while the offset still exceeds the band.
func ReanchorAxis(m Metrics, axis Axis, band float64, index int, offset, delta float64) (int, float64) {
	index = max(index, 1)
	if delta >= 0 {
		return index, offset - delta
	}
	offset -= delta
	for offset > band && index > 1 {
		index--
		offset -= m.SizeOf(axis, index)
	}
	return index, min(offset, band)
}

// Reanchor applies a wheel gesture to an anchor. Only one axis moves per
// gesture: vertical when dy is nonzero, horizontal otherwise.
func Reanchor(cfg *Config, m Metrics, a Anchor, dx, dy float64) Anchor {
	switch {
	case dy != 0:
		a.Row, a.RowOffset = ReanchorAxis(m, RowAxis, cfg.HeaderHeight, a.Row, a.RowOffset, dy)
	case dx != 0:
		a.Column, a.ColumnOffset = ReanchorAxis(m, ColumnAxis, cfg.HeaderWidth, a.Column, a.ColumnOffset, dx)
	}
	return a
}
