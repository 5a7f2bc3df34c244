package sheetgrid

import (
	"fmt"
	"sync"
)

// MemorySource is an in-memory Source and SizeStore.
type MemorySource struct {
	mu      sync.RWMutex
	cells   map[Address]CellData
	heights map[int]float64
	widths  map[int]float64
}

// NewMemorySource creates an empty MemorySource.
func NewMemorySource() *MemorySource {
	return &MemorySource{
		cells:   make(map[Address]CellData),
		heights: make(map[int]float64),
		widths:  make(map[int]float64),
	}
}

// SetCell stores content at addr, replacing anything already there.
func (m *MemorySource) SetCell(addr Address, data CellData) error {
	if !addr.Valid() {
		return fmt.Errorf("set cell %s: %w", addr.Key(), ErrInvalidIndex)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cells[addr] = data
	return nil
}

// SetText stores plain text at addr.
func (m *MemorySource) SetText(addr Address, text string) error {
	return m.SetCell(addr, CellData{Content: TextRuns(text, Attributes{})})
}

// DeleteCell removes the content at addr.
func (m *MemorySource) DeleteCell(addr Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cells, addr)
}

func (m *MemorySource) CellContent(addr Address) (CellData, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.cells[addr]
	return d, ok
}

func (m *MemorySource) RowHeight(row int) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	h, ok := m.heights[row]
	return h, ok
}

func (m *MemorySource) ColumnWidth(col int) (float64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.widths[col]
	return w, ok
}

func (m *MemorySource) SetRowHeight(row int, height float64) error {
	return setOverride(&m.mu, m.heights, "row", row, height)
}

func (m *MemorySource) SetColumnWidth(col int, width float64) error {
	return setOverride(&m.mu, m.widths, "column", col, width)
}

func setOverride(mu *sync.RWMutex, sizes map[int]float64, axis string, index int, size float64) error {
	if index < 1 {
		return fmt.Errorf("resize %s %d: %w", axis, index, ErrInvalidIndex)
	}
	if size <= 0 {
		return fmt.Errorf("resize %s %d to %g: %w", axis, index, size, ErrInvalidSize)
	}
	mu.Lock()
	defer mu.Unlock()
	sizes[index] = size
	return nil
}
