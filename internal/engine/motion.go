package engine

import (
	"github.com/dshills/modal/internal/engine/buffer"
	"github.com/dshills/modal/internal/input/vim"
)

// motion moves the cursor count times and, with an operator, applies it
// over the swept range.
func (e *Editor) motion(op vim.Operator, count int, m vim.Motion) {
	start := e.cursor
	for i := 0; i < count; i++ {
		e.step(m)
	}
	if op == vim.OpNone {
		return
	}
	e.operate(op, buffer.NewRange(start, e.cursor))
}

// step applies a single motion.
func (e *Editor) step(m vim.Motion) {
	switch m {
	case vim.MotionUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
		e.clampCol()
	case vim.MotionDown:
		if e.cursor.Row < e.buf.LineCount()-1 {
			e.cursor.Row++
		}
		e.clampCol()
	case vim.MotionLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		}
	case vim.MotionRight:
		if e.cursor.Col < len(e.line()) {
			e.cursor.Col++
		}
	case vim.MotionStart:
		e.cursor.Col = 0
	case vim.MotionEnd:
		e.cursor.Col = len(e.line())
	case vim.MotionWord:
		e.cursor.Col = nextSpace(e.line(), e.cursor.Col)
	}
}

// nextSpace returns the index of the first space after col, or len(line).
func nextSpace(line []rune, col int) int {
	for i := col + 1; i < len(line); i++ {
		if line[i] == ' ' {
			return i
		}
	}
	return len(line)
}
