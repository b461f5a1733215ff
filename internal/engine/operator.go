package engine

import (
	"slices"

	"github.com/dshills/modal/internal/engine/buffer"
	"github.com/dshills/modal/internal/input/vim"
)

// operate copies r into the register, removes it for Delete, and leaves
// the cursor at r.Start.
func (e *Editor) operate(op vim.Operator, r buffer.Range) {
	e.register = e.extract(r)
	if op.ChangesText() {
		e.remove(r)
	}
	e.cursor = r.Start
}

// extract returns a copy of the text in r as a buffer. The first and last
// lines are partial; intermediate lines are whole.
func (e *Editor) extract(r buffer.Range) *buffer.Buffer {
	lines := e.buf.Lines

	if r.Start.Row == r.End.Row {
		part := slices.Clone(lines[r.Start.Row][r.Start.Col:r.End.Col])
		return &buffer.Buffer{Lines: [][]rune{part}}
	}

	out := make([][]rune, 0, r.Lines())
	out = append(out, slices.Clone(lines[r.Start.Row][r.Start.Col:]))
	for row := r.Start.Row + 1; row < r.End.Row; row++ {
		out = append(out, slices.Clone(lines[row]))
	}
	out = append(out, slices.Clone(lines[r.End.Row][:r.End.Col]))
	return &buffer.Buffer{Lines: out}
}

// remove deletes the text in r, joining the head of the first line to the
// tail of the last. At least one line always remains.
func (e *Editor) remove(r buffer.Range) {
	lines := e.buf.Lines
	joined := slices.Concat(lines[r.Start.Row][:r.Start.Col], lines[r.End.Row][r.End.Col:])

	out := make([][]rune, 0, len(lines)-(r.End.Row-r.Start.Row))
	out = append(out, lines[:r.Start.Row]...)
	out = append(out, joined)
	out = append(out, lines[r.End.Row+1:]...)
	e.buf.Lines = out
}
