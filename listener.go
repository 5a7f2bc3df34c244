package sheetgrid

// SelectionListener is notified after every selection change with a copy of the
// new selection. Implement it to position overlays such as the selection box.
type SelectionListener interface {
	SelectionChanged(sel Selection)
}

// SelectionFunc adapts a function to SelectionListener.
type SelectionFunc func(sel Selection)

func (f SelectionFunc) SelectionChanged(sel Selection) { f(sel) }
