// Package layout splits the terminal between the spinner and the footer.
package layout

import "ringspin/pkg/gui/canvas"

const (
	// LabelRows is the space taken by a label under the ring: a gap and one line.
	LabelRows = 2
)

// Layout manages the dimensions of the demo screen
type Layout struct {
	width  int
	height int

	footerRows int
	bodyRows   int
}

// NewLayout creates a new layout with the given terminal dimensions
func NewLayout(width, height int) *Layout {
	l := &Layout{
		width:  width,
		height: height,
	}
	l.calculate()
	return l
}

// Resize updates the terminal dimensions
func (l *Layout) Resize(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

// SetFooterRows updates the height reserved for the footer
func (l *Layout) SetFooterRows(rows int) {
	l.footerRows = rows
	l.calculate()
}

func (l *Layout) calculate() {
	l.bodyRows = l.height - l.footerRows
	if l.bodyRows < 0 {
		l.bodyRows = 0
	}
}

// GetWidth returns the terminal width
func (l *Layout) GetWidth() int { return l.width }

// GetHeight returns the terminal height
func (l *Layout) GetHeight() int { return l.height }

// BodyRows returns the rows left above the footer
func (l *Layout) BodyRows() int { return l.bodyRows }

// SquareUnits returns the edge, in canvas units, of the largest square that
// fits in cols x rows terminal cells.
func SquareUnits(cols, rows int) int {
	w := cols * canvas.CellWidth
	if h := rows * canvas.CellHeight; h < w {
		w = h
	}
	if w < 0 {
		return 0
	}
	return w
}

// CellsFor returns the terminal cells needed to show a square of units.
func CellsFor(units int) (cols, rows int) {
	cols = (units + canvas.CellWidth - 1) / canvas.CellWidth
	rows = (units + canvas.CellHeight - 1) / canvas.CellHeight
	return cols, rows
}
