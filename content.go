package sheetgrid

import "strings"

// Newline is the insert value of a run that forces a line break.
const Newline = "\n"

// Attributes are the optional style fields of a run. A zero field means "use the
// default", never "inherit from the previous run".
type Attributes struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strike    bool
	Color     string  // hex, default DefaultTextColor
	Font      string  // font-table key, default DefaultFontKey
	Size      float64 // pixels, default DefaultFontSize
}

// Run is one contiguous span of styled text.
type Run struct {
	Insert     string
	Attributes Attributes
}

// IsNewline reports whether the run is a line-break marker.
func (r Run) IsNewline() bool { return r.Insert == Newline }

// CellData is the externally owned content of a cell.
type CellData struct {
	Background string // hex, empty means none
	Content    []Run
}

// PlainText concatenates the run inserts.
func (d CellData) PlainText() string {
	var b strings.Builder
	for _, r := range d.Content {
		b.WriteString(r.Insert)
	}
	return b.String()
}

// TextRuns splits s into runs with the given attributes, turning each line break
// into a newline marker run.
func TextRuns(s string, attrs Attributes) []Run {
	if s == "" {
		return nil
	}
	var runs []Run
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", Newline), Newline)
	for i, line := range lines {
		if i > 0 {
			runs = append(runs, Run{Insert: Newline})
		}
		if line != "" {
			runs = append(runs, Run{Insert: line, Attributes: attrs})
		}
	}
	return runs
}

// ContentSource looks up cell content by address.
type ContentSource interface {
	CellContent(addr Address) (CellData, bool)
}

// SizeSource reports per-axis override sizes.
type SizeSource interface {
	RowHeight(row int) (float64, bool)
	ColumnWidth(col int) (float64, bool)
}

// Source is everything the session reads from its collaborators.
type Source interface {
	ContentSource
	SizeSource
}

// SizeStore is a SizeSource that accepts resize commands. Implementations reject
// sizes <= 0 with ErrInvalidSize.
type SizeStore interface {
	SizeSource
	SetRowHeight(row int, height float64) error
	SetColumnWidth(col int, width float64) error
}
