package sheetgrid

import (
	"fmt"
	"strings"
)

// ColumnTitle converts a 1-based column index to its spreadsheet label.
// 1→"A", 26→"Z", 27→"AA", 702→"ZZ", 703→"AAA". Indices below 1 yield "".
func ColumnTitle(col int) string {
	if col < 1 {
		return ""
	}
	var buf [16]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}

// TitleToColumn converts a column label to its 1-based index.
// "A"→1, "Z"→26, "AA"→27
func TitleToColumn(title string) (int, error) {
	title = strings.ToUpper(strings.TrimSpace(title))
	if title == "" {
		return 0, fmt.Errorf("empty column title")
	}
	col := 0
	for _, ch := range title {
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("invalid column title: %q", title)
		}
		col = col*26 + int(ch-'A') + 1
		if col < 0 {
			return 0, fmt.Errorf("column title out of range: %q", title)
		}
	}
	return col, nil
}
