package sheetgrid

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Spreadsheet defaults used to tell custom sizes from implicit ones.
const (
	defaultRowHeightPt  = 15.0
	defaultColWidthChar = 9.140625
	sizeEpsilon         = 1e-6
)

// ExcelizeSource is a Source backed by one sheet of an xlsx workbook. The sheet is
// read into memory up front; resizes are applied to the in-memory overrides only.
type ExcelizeSource struct {
	*MemorySource
	Sheet string

	styleCache map[int]*excelize.Style
}

// OpenWorkbook opens an xlsx file and loads sheet ("" selects the active sheet).
func OpenWorkbook(path, sheet string) (*ExcelizeSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	return NewExcelizeSource(f, sheet)
}

// NewExcelizeSource loads sheet from an open workbook ("" selects the active sheet).
// The workbook is not retained and may be closed afterwards.
func NewExcelizeSource(f *excelize.File, sheet string) (*ExcelizeSource, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("load sheet %q: %w", sheet, ErrNoSheet)
	}
	src := &ExcelizeSource{
		MemorySource: NewMemorySource(),
		Sheet:        sheet,
		styleCache:   make(map[int]*excelize.Style),
	}
	if err := src.readSheet(f); err != nil {
		return nil, fmt.Errorf("load sheet %q: %w", sheet, err)
	}
	return src, nil
}

func (src *ExcelizeSource) readSheet(f *excelize.File) error {
	rows, err := f.Rows(src.Sheet)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}
	defer rows.Close()

	// Unlike GetRows, the iterator keeps trailing rows that carry only
	// attributes, so empty resized rows get their height.
	for row := 1; rows.Next(); row++ {
		h, err := f.GetRowHeight(src.Sheet, row)
		if err == nil && h > 0 && math.Abs(h-defaultRowHeightPt) > sizeEpsilon {
			src.heights[row] = PointsToPixels(h)
		}

		values, err := rows.Columns()
		if err != nil {
			return fmt.Errorf("read row %d: %w", row, err)
		}
		for colIdx, value := range values {
			data, ok, err := src.readCell(f, colIdx+1, row, value)
			if err != nil {
				return err
			}
			if ok {
				src.cells[Address{Column: colIdx + 1, Row: row}] = data
			}
		}
	}
	if err := rows.Error(); err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	// Column definitions can lie past the last data cell, and there is no API
	// listing them, so every addressable column is checked.
	for col := 1; col <= excelize.MaxColumns; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("column %d: %w", col, err)
		}
		w, err := f.GetColWidth(src.Sheet, name)
		if err == nil && math.Abs(w-defaultColWidthChar) > sizeEpsilon && w > 0 {
			src.widths[col] = CharsToPixels(w)
		}
	}
	return nil
}

// readCell converts one cell. Rich-text cells keep their runs; plain cells get a
// single style derived from the cell's font. Cells with neither text nor fill are skipped.
func (src *ExcelizeSource) readCell(f *excelize.File, col, row int, value string) (CellData, bool, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return CellData{}, false, fmt.Errorf("cell (%d,%d): %w", col, row, err)
	}

	var data CellData
	var cellFont *excelize.Font
	if style := src.cellStyle(f, name); style != nil {
		cellFont = style.Font
		if style.Fill.Type == "pattern" && style.Fill.Pattern == 1 && len(style.Fill.Color) > 0 {
			data.Background = style.Fill.Color[0]
		}
	}

	runs, err := f.GetCellRichText(src.Sheet, name)
	if err == nil && len(runs) > 0 {
		for _, r := range runs {
			font := r.Font
			if font == nil {
				font = cellFont
			}
			data.Content = append(data.Content, TextRuns(r.Text, fontAttributes(font))...)
		}
	} else {
		data.Content = TextRuns(value, fontAttributes(cellFont))
	}

	if len(data.Content) == 0 && data.Background == "" {
		return CellData{}, false, nil
	}
	return data, true, nil
}

func (src *ExcelizeSource) cellStyle(f *excelize.File, cell string) *excelize.Style {
	id, err := f.GetCellStyle(src.Sheet, cell)
	if err != nil || id == 0 {
		return nil
	}
	if style, ok := src.styleCache[id]; ok {
		return style
	}
	style, err := f.GetStyle(id)
	if err != nil {
		style = nil
	}
	src.styleCache[id] = style
	return style
}

// fontAttributes maps a workbook font onto run attributes. Sizes convert from
// points to pixels and families to font-table keys ("Roboto Mono" -> "roboto-mono").
func fontAttributes(font *excelize.Font) Attributes {
	if font == nil {
		return Attributes{}
	}
	a := Attributes{
		Bold:      font.Bold,
		Italic:    font.Italic,
		Underline: font.Underline != "" && font.Underline != "none",
		Strike:    font.Strike,
		Color:     font.Color,
	}
	if font.Family != "" {
		a.Font = FontKey(font.Family)
	}
	if font.Size > 0 {
		a.Size = PointsToPixels(font.Size)
	}
	return a
}

// FontKey derives a font-table key from a family name.
func FontKey(family string) string {
	return strings.ToLower(strings.Join(strings.Fields(family), "-"))
}

// PointsToPixels converts a point size at 96 DPI.
func PointsToPixels(pt float64) float64 {
	return pt * 4 / 3
}

// CharsToPixels converts a column width in character units to pixels using the
// spreadsheet maximum digit width of 7px.
func CharsToPixels(w float64) float64 {
	return math.Trunc((256*w + math.Trunc(128.0/7)) / 256 * 7)
}
