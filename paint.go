package sheetgrid

import (
	"image/color"
	"strconv"

	"github.com/olekukonko/ll"
)

// painter draws frames in a fixed order: cell backgrounds, content and borders
// row-major, then row headers, column headers, and the corner box on top.
type painter struct {
	cfg    *Config
	src    ContentSource
	rules  []*BackgroundRule
	logger *ll.Logger
}

// PlacedRun is a text run positioned by the rich-text layout.
type PlacedRun struct {
	Text      string
	At        Point // left end of the baseline
	Width     float64
	Font      Font
	Color     color.RGBA
	Underline bool
	Strike    bool
}

// LayoutRuns positions runs left to right from the padded left edge of rect. A
// newline run returns to the left edge and moves down one line. Nothing wraps;
// overflow is left for neighbouring cells to paint over.
func LayoutRuns(s Surface, cfg *Config, runs []Run, rect Rect) []PlacedRun {
	if len(runs) == 0 {
		return nil
	}
	left := rect.X + TextPadding
	pen := Point{X: left, Y: rect.Y + LineHeight}

	placed := make([]PlacedRun, 0, len(runs))
	for _, run := range runs {
		if run.IsNewline() {
			pen.X = left
			pen.Y += LineHeight
			continue
		}
		f, c := resolveStyle(cfg, run.Attributes)
		w := s.MeasureText(run.Insert, f)
		placed = append(placed, PlacedRun{
			Text:      run.Insert,
			At:        pen,
			Width:     w,
			Font:      f,
			Color:     c,
			Underline: run.Attributes.Underline,
			Strike:    run.Attributes.Strike,
		})
		pen.X += w
	}
	return placed
}

// resolveStyle applies the documented default to every absent attribute.
func resolveStyle(cfg *Config, a Attributes) (Font, color.RGBA) {
	size := a.Size
	if size <= 0 {
		size = DefaultFontSize
	}
	c := black
	if a.Color != "" {
		if parsed, err := ParseColor(a.Color); err == nil {
			c = parsed
		}
	}
	return Font{
		Family: cfg.FontFamily(a.Font),
		Size:   size,
		Bold:   a.Bold,
		Italic: a.Italic,
	}, c
}

// frame clears the viewport and paints every visible cell followed by the headers.
func (p *painter) frame(s Surface, w Window, sel Selection) {
	if s == nil || w.Empty() {
		return
	}
	width, height := s.Size()
	s.Clear(Rect{Width: width, Height: height})
	for _, cell := range w.Cells {
		p.cell(s, cell, sel)
	}
	p.headers(s, w, sel)
}

func (p *painter) cell(s Surface, cell Cell, sel Selection) {
	data, ok := CellData{}, false
	if p.src != nil {
		data, ok = p.src.CellContent(cell.Address)
	}
	s.FillRect(cell.Rect, p.background(cell.Address, data, ok, sel))
	if ok {
		p.content(s, data.Content, cell.Rect)
	}
	p.cellLine(s, cell.Rect)
}

func (p *painter) background(addr Address, data CellData, ok bool, sel Selection) color.RGBA {
	if sel.CellTinted(addr) {
		return p.cfg.SelectionTint
	}
	if ok && data.Background != "" {
		c, err := ParseColor(data.Background)
		if err == nil {
			return c
		}
		p.logger.Errorf("cell %s: %v", addr, err)
	}
	if len(p.rules) > 0 {
		env := newRuleEnv(addr, data, ok)
		for _, r := range p.rules {
			match, err := r.Match(env)
			if err != nil {
				p.logger.Errorf("cell %s: %v", addr, err)
				continue
			}
			if match {
				return r.Color
			}
		}
	}
	return white
}

func (p *painter) content(s Surface, runs []Run, rect Rect) {
	for _, run := range LayoutRuns(s, p.cfg, runs, rect) {
		s.DrawText(run.Text, run.At, run.Font, run.Color, AnchorBaseline)
		if run.Underline {
			y := run.At.Y + underlineOffset
			s.StrokeLine(Point{X: run.At.X, Y: y}, Point{X: run.At.X + run.Width, Y: y}, run.Color, DecorationWidth)
		}
		if run.Strike {
			y := run.At.Y + strikeOffset
			s.StrokeLine(Point{X: run.At.X, Y: y}, Point{X: run.At.X + run.Width, Y: y}, run.Color, DecorationWidth)
		}
	}
}

// cellLine draws the bottom and right borders.
func (p *painter) cellLine(s Surface, r Rect) {
	bottomLeft := Point{X: r.X, Y: r.Y + r.Height}
	bottomRight := Point{X: r.X + r.Width, Y: r.Y + r.Height}
	topRight := Point{X: r.X + r.Width, Y: r.Y}
	s.StrokeLine(bottomLeft, bottomRight, p.cfg.StrokeColor, p.cfg.LineWidth)
	s.StrokeLine(bottomRight, topRight, p.cfg.StrokeColor, p.cfg.LineWidth)
}

// headers paints row headers, column headers and the corner box.
func (p *painter) headers(s Surface, w Window, sel Selection) {
	if s == nil || w.Empty() {
		return
	}
	p.rows(s, w.Rows, sel)
	p.columns(s, w.Columns, sel)
	p.box(s)
}

func (p *painter) rows(s Surface, rows []Row, sel Selection) {
	if len(rows) == 0 {
		return
	}
	for _, r := range rows {
		hot := sel.RowHighlighted(r.Index)
		p.headerBackground(s, r.Rect, hot)
		s.StrokeLine(
			Point{X: r.X, Y: r.Y + r.Height},
			Point{X: r.X + r.Width, Y: r.Y + r.Height},
			p.cfg.StrokeColor, p.cfg.LineWidth)
		p.headerLabel(s, strconv.Itoa(r.Index), r.Rect, hot)
	}

	_, height := s.Size()
	band := p.cfg.LineWidth - 0.5
	s.StrokeLine(Point{X: 0, Y: p.cfg.HeaderHeight}, Point{X: 0, Y: height}, p.cfg.StrokeColor, band)
	s.StrokeLine(Point{X: p.cfg.HeaderWidth, Y: p.cfg.HeaderHeight}, Point{X: p.cfg.HeaderWidth, Y: height}, p.cfg.StrokeColor, band)
}

func (p *painter) columns(s Surface, cols []Column, sel Selection) {
	if len(cols) == 0 {
		return
	}
	for _, c := range cols {
		hot := sel.ColumnHighlighted(c.Index)
		p.headerBackground(s, c.Rect, hot)
		s.StrokeLine(
			Point{X: c.X + c.Width, Y: c.Y},
			Point{X: c.X + c.Width, Y: c.Y + c.Height},
			p.cfg.StrokeColor, p.cfg.LineWidth)
		p.headerLabel(s, ColumnTitle(c.Index), c.Rect, hot)
	}

	width, _ := s.Size()
	band := p.cfg.LineWidth - 0.5
	s.StrokeLine(Point{X: p.cfg.HeaderWidth, Y: p.cfg.HeaderHeight}, Point{X: width, Y: p.cfg.HeaderHeight}, p.cfg.StrokeColor, band)
	s.StrokeLine(Point{X: p.cfg.HeaderWidth, Y: 1}, Point{X: width, Y: 1}, p.cfg.StrokeColor, band)
}

func (p *painter) headerBackground(s Surface, r Rect, hot bool) {
	fill := p.cfg.HeaderFill
	if hot {
		fill = p.cfg.HeaderHighlight
	}
	s.FillRect(r, fill)
}

func (p *painter) headerLabel(s Surface, label string, r Rect, hot bool) {
	c := p.cfg.HeaderLabel
	if hot {
		c = p.cfg.HeaderLabelHot
	}
	center := Point{X: r.X + r.Width/2 + 1, Y: r.Y + r.Height/2 + 1}
	s.DrawText(label, center, p.cfg.HeaderFont, c, AnchorCenter)
}

// box repaints the fixed corner so it always covers stray header lines.
func (p *painter) box(s Surface) {
	s.FillRect(Rect{Width: p.cfg.HeaderWidth, Height: p.cfg.HeaderHeight}, white)
	s.StrokeRect(Rect{X: 0, Y: 1, Width: p.cfg.HeaderWidth, Height: p.cfg.HeaderHeight - 1}, p.cfg.StrokeColor, p.cfg.LineWidth-0.5)
}
