package sheetgrid

// Axis selects rows or columns.
type Axis int

const (
	RowAxis Axis = iota
	ColumnAxis
)

func (a Axis) String() string {
	if a == RowAxis {
		return "row"
	}
	return "column"
}

// Metrics converts logical indices to pixel sizes using per-axis overrides and
// the configured defaults. Every index without an override gets the default, so
// the grid is unbounded along both axes.
type Metrics struct {
	cfg   *Config
	sizes SizeSource
}

// NewMetrics creates a Metrics over the given config and overrides. sizes may be nil.
func NewMetrics(cfg *Config, sizes SizeSource) Metrics {
	return Metrics{cfg: cfg, sizes: sizes}
}

// SizeOf returns the pixel size of index along axis. An override is returned as
// is, even when zero.
func (m Metrics) SizeOf(axis Axis, index int) float64 {
	if m.sizes != nil {
		var (
			size float64
			ok   bool
		)
		if axis == RowAxis {
			size, ok = m.sizes.RowHeight(index)
		} else {
			size, ok = m.sizes.ColumnWidth(index)
		}
		if ok {
			return size
		}
	}
	if axis == RowAxis {
		return m.cfg.CellHeight
	}
	return m.cfg.CellWidth
}
