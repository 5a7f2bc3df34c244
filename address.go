package sheetgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Address identifies a logical cell. Both indices are 1-based; 0 means "none".
type Address struct {
	Column int
	Row    int
}

// Valid reports whether both indices are addressable (>= 1).
func (a Address) Valid() bool {
	return a.Column >= 1 && a.Row >= 1
}

// Key returns the composite key "column,row", e.g. "3,12".
func (a Address) Key() string {
	return strconv.Itoa(a.Column) + "," + strconv.Itoa(a.Row)
}

// String formats the address in A1 notation, e.g. "C12".
func (a Address) String() string {
	if !a.Valid() {
		return ""
	}
	return ColumnTitle(a.Column) + strconv.Itoa(a.Row)
}

// ParseKey parses a composite key produced by Key.
func ParseKey(key string) (Address, error) {
	colStr, rowStr, ok := strings.Cut(strings.TrimSpace(key), ",")
	if !ok {
		return Address{}, fmt.Errorf("invalid cell key (missing ','): %q", key)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return Address{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return Address{}, fmt.Errorf("invalid cell key %q: %w", key, err)
	}
	a := Address{Column: col, Row: row}
	if !a.Valid() {
		return Address{}, fmt.Errorf("invalid cell key %q: indices must be >= 1", key)
	}
	return a, nil
}

// ParseAddress parses A1 notation like "B5" or "$AA$10".
func ParseAddress(s string) (Address, error) {
	name := strings.ReplaceAll(strings.TrimSpace(s), "$", "")
	if name == "" {
		return Address{}, fmt.Errorf("empty cell address")
	}

	i := 0
	for i < len(name) && isAlpha(name[i]) {
		i++
	}
	if i == 0 || i == len(name) {
		return Address{}, fmt.Errorf("invalid cell address: %q", s)
	}

	col, err := TitleToColumn(name[:i])
	if err != nil {
		return Address{}, fmt.Errorf("invalid cell address %q: %w", s, err)
	}
	row, err := strconv.Atoi(name[i:])
	if err != nil || row < 1 || strings.ContainsAny(name[i:], "+-") {
		return Address{}, fmt.Errorf("invalid row in cell address: %q", s)
	}
	return Address{Column: col, Row: row}, nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
