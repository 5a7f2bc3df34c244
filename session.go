package sheetgrid

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/ll"
	"github.com/olekukonko/ll/lh"
)

// Session owns the anchor, the visible window and the selection of one grid.
// Collaborators read snapshots and issue commands; nothing else mutates state.
// A Session is not safe for concurrent use.
type Session struct {
	cfg       Config
	src       Source
	metrics   Metrics
	painter   painter
	surface   Surface
	listeners []SelectionListener
	logger    *ll.Logger

	anchor Anchor
	window Window
	sel    Selection
}

// NewSession creates a session reading cells and sizes from src.
func NewSession(src Source, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if err := validateConfig(o.config); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		logger = ll.New("sheetgrid").Handler(lh.NewTextHandler(os.Stderr))
	}
	if o.debug {
		logger.Enable()
	} else if o.logger == nil {
		logger.Disable()
	}

	rules := make([]*BackgroundRule, 0, len(o.rules))
	for _, spec := range o.rules {
		r, err := NewBackgroundRule(spec.condition, spec.color)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	s := &Session{
		cfg:       o.config.clone(),
		src:       src,
		surface:   o.surface,
		listeners: o.listeners,
		logger:    logger,
	}
	s.metrics = NewMetrics(&s.cfg, src)
	s.painter = painter{cfg: &s.cfg, src: src, rules: rules, logger: logger}
	s.anchor = DefaultAnchor(s.cfg)
	logger.Debugf("session created with %d background rules", len(rules))
	return s, nil
}

func validateConfig(cfg Config) error {
	if cfg.CellHeight <= 0 || cfg.CellWidth <= 0 {
		return fmt.Errorf("default cell size %gx%g: %w", cfg.CellWidth, cfg.CellHeight, ErrInvalidSize)
	}
	if cfg.HeaderHeight < 0 || cfg.HeaderWidth < 0 {
		return fmt.Errorf("header band %gx%g: %w", cfg.HeaderWidth, cfg.HeaderHeight, ErrInvalidSize)
	}
	return nil
}

// Mount attaches the drawing surface. Until a surface is mounted every paint and
// rebuild is a no-op.
func (s *Session) Mount(surface Surface) {
	s.surface = surface
}

// Mounted reports whether a surface is attached.
func (s *Session) Mounted() bool { return s.surface != nil }

// Start waits for the surface's fonts when it loads them asynchronously, then
// performs the first resize and full paint.
func (s *Session) Start(ctx context.Context) error {
	if s.surface == nil {
		return nil
	}
	if fw, ok := s.surface.(FontWaiter); ok {
		if err := fw.WaitFonts(ctx); err != nil {
			return fmt.Errorf("wait for fonts: %w", err)
		}
	}
	w, h := s.surface.Size()
	s.Resize(w, h)
	return nil
}

// Resize changes the viewport size and rebuilds from the current anchor.
func (s *Session) Resize(width, height float64) {
	if s.surface == nil {
		return
	}
	if r, ok := s.surface.(Resizer); ok {
		r.Resize(width, height)
	}
	s.logger.Debugf("viewport resized to %gx%g", width, height)
	s.Rebuild(s.anchor)
}

// Rebuild replaces the window with one built from a, then repaints the frame.
func (s *Session) Rebuild(a Anchor) {
	if s.surface == nil {
		return
	}
	a.Row = max(a.Row, 1)
	a.Column = max(a.Column, 1)

	width, height := s.surface.Size()
	s.window = BuildWindow(&s.cfg, s.metrics, a, width, height)
	if derived, ok := s.window.Anchor(); ok {
		a = derived
	}
	s.anchor = a
	s.refreshSelection()
	s.logger.Debugf("window rebuilt: %d rows from %d, %d columns from %d",
		len(s.window.Rows), s.anchor.Row, len(s.window.Columns), s.anchor.Column)
	s.painter.frame(s.surface, s.window, s.sel)
}

// ScrollBy applies a wheel gesture. Vertical deltas take precedence; the window
// is rebuilt from the re-anchored position on every call.
func (s *Session) ScrollBy(dx, dy float64) {
	if s.surface == nil || s.window.Empty() {
		return
	}
	next := Reanchor(&s.cfg, s.metrics, s.anchor, dx, dy)
	s.logger.Debugf("scroll (%g, %g): row %d@%g -> %d@%g, column %d@%g -> %d@%g", dx, dy,
		s.anchor.Row, s.anchor.RowOffset, next.Row, next.RowOffset,
		s.anchor.Column, s.anchor.ColumnOffset, next.Column, next.ColumnOffset)
	s.Rebuild(next)
}

// ResizeAxis forwards a resize to the source and rebuilds from the current anchor.
func (s *Session) ResizeAxis(axis Axis, index int, size float64) error {
	store, ok := s.src.(SizeStore)
	if !ok {
		return fmt.Errorf("resize %s %d: %w", axis, index, ErrReadOnlySource)
	}
	var err error
	if axis == RowAxis {
		err = store.SetRowHeight(index, size)
	} else {
		err = store.SetColumnWidth(index, size)
	}
	if err != nil {
		return err
	}
	s.logger.Debugf("%s %d resized to %g", axis, index, size)
	s.Rebuild(s.anchor)
	return nil
}

// Paint repaints the whole frame without rebuilding the window.
func (s *Session) Paint() {
	s.painter.frame(s.surface, s.window, s.sel)
}

// PaintHeaders repaints the headers and the corner box only.
func (s *Session) PaintHeaders() {
	s.painter.headers(s.surface, s.window, s.sel)
}

// Window returns a copy of the visible window.
func (s *Session) Window() Window { return s.window.clone() }

// Anchor returns the current anchor.
func (s *Session) Anchor() Anchor { return s.anchor }

// Selection returns a copy of the selection.
func (s *Session) Selection() Selection { return s.sel.clone() }

// Config returns a copy of the configuration.
func (s *Session) Config() Config { return s.cfg.clone() }

// ResolveAddress maps a viewport pixel to the visible cell under it.
func (s *Session) ResolveAddress(x, y float64) (Address, bool) {
	return s.window.ResolveAddress(x, y)
}

// refreshSelection moves the selected cell's rect to its current position.
func (s *Session) refreshSelection() {
	if s.sel.Cell == nil {
		return
	}
	if c, ok := s.window.Cell(s.sel.Cell.Address); ok {
		s.sel.Cell = &c
		return
	}
	s.sel.Cell = &Cell{Address: s.sel.Cell.Address}
}
