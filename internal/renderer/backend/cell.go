package backend

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is a single screen position.
type Cell struct {
	Rune  rune
	Width int // display width: 1 normal, 2 wide, 0 continuation
	Style tcell.Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: tcell.StyleDefault}
}

// NewCell creates a cell with the default style.
func NewCell(r rune) Cell {
	return NewStyledCell(r, tcell.StyleDefault)
}

// NewStyledCell creates a cell with the given style.
func NewStyledCell(r rune, style tcell.Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// ContinuationCell returns the placeholder that follows a wide rune.
func ContinuationCell(style tcell.Style) Cell {
	return Cell{Rune: 0, Width: 0, Style: style}
}

// IsContinuation reports whether the cell is the trailing half of a wide rune.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the number of columns r occupies, at least 1.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}

// StringWidth returns the number of columns s occupies.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}

// StringFromCells converts a row of cells back to text, skipping
// continuation cells and trimming trailing blanks.
func StringFromCells(cells []Cell) string {
	var sb strings.Builder
	for _, c := range cells {
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}
