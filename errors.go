package sheetgrid

import "errors"

var (
	// ErrInvalidSize is returned by size stores for non-positive sizes.
	ErrInvalidSize = errors.New("size must be positive")
	// ErrInvalidIndex is returned for row or column indices below 1.
	ErrInvalidIndex = errors.New("index must be >= 1")
	// ErrReadOnlySource is returned by ResizeAxis when the source is not a SizeStore.
	ErrReadOnlySource = errors.New("source does not accept resizes")
	// ErrNoSheet is returned when a workbook has no sheet with the requested name.
	ErrNoSheet = errors.New("sheet not found")
)
