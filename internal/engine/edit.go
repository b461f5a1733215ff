package engine

import (
	"slices"
	"unicode"
)

// write inserts a character at the cursor.
// Tabs expand to TabWidth spaces; letters, digits and space insert
// themselves; anything else is dropped.
func (e *Editor) write(r rune) {
	switch {
	case r == '\t':
		spaces := make([]rune, TabWidth)
		for i := range spaces {
			spaces[i] = ' '
		}
		e.insert(spaces)
	case r == ' ' || unicode.IsLetter(r) || unicode.IsNumber(r):
		e.insert([]rune{r})
	}
}

// insert splices runes into the current line and advances past them.
func (e *Editor) insert(rs []rune) {
	row := e.cursor.Row
	e.buf.Lines[row] = slices.Insert(e.buf.Lines[row], e.cursor.Col, rs...)
	e.cursor.Col += len(rs)
}

// backspace deletes the character left of the cursor. At column 0 it joins
// the current line onto the previous one; on the first line it does nothing.
func (e *Editor) backspace() {
	row, col := e.cursor.Row, e.cursor.Col

	if col == 0 {
		if row == 0 {
			return
		}
		prev := e.buf.Lines[row-1]
		join := len(prev)
		e.buf.Lines[row-1] = slices.Concat(prev, e.buf.Lines[row])
		e.buf.Lines = slices.Delete(e.buf.Lines, row, row+1)
		e.cursor.Row = row - 1
		e.cursor.Col = join
		return
	}

	e.buf.Lines[row] = slices.Delete(e.buf.Lines[row], col-1, col)
	e.cursor.Col--
}

// enter splits the current line at the cursor and moves to the start of
// the new line.
func (e *Editor) enter() {
	row, col := e.cursor.Row, e.cursor.Col
	line := e.buf.Lines[row]

	right := slices.Clone(line[col:])
	e.buf.Lines[row] = slices.Clip(line[:col])
	e.buf.Lines = slices.Insert(e.buf.Lines, row+1, right)

	e.cursor.Row = row + 1
	e.cursor.Col = 0
}
