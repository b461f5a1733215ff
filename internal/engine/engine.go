package engine

import (
	"github.com/dshills/modal/internal/engine/buffer"
	"github.com/dshills/modal/internal/input"
	"github.com/dshills/modal/internal/input/mode"
)

// Editor is the editor core.
type Editor struct {
	buf      *buffer.Buffer
	cursor   buffer.Point
	mode     *mode.State
	register *buffer.Buffer

	// Viewport dimensions, recorded for the renderer only.
	width  int
	height int
}

// New creates an editor with an empty buffer in Normal mode.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:      buffer.NewBuffer(),
		mode:     mode.NewState(mode.Normal),
		register: buffer.NewBuffer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply performs one action and reports whether it was Quit.
func (e *Editor) Apply(a input.Action) (quit bool) {
	switch a.Kind {
	case input.ActionQuit:
		return true
	case input.ActionChangeMode:
		e.mode.Set(a.Mode)
	case input.ActionWrite:
		e.write(a.Rune)
	case input.ActionBackSpace:
		e.backspace()
	case input.ActionEnter:
		e.enter()
	case input.ActionMotion:
		e.motion(a.Operator, a.Count, a.Motion)
	case input.ActionWindowResize:
		e.width = a.Width
		e.height = a.Height
	}
	return false
}

// Buffer returns the text buffer.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() buffer.Point {
	return e.cursor
}

// Mode returns the current mode.
func (e *Editor) Mode() mode.Mode {
	return e.mode.Current()
}

// ModeState returns the shared mode cell.
func (e *Editor) ModeState() *mode.State {
	return e.mode
}

// Register returns the secondary buffer holding the last yank or delete.
func (e *Editor) Register() *buffer.Buffer {
	return e.register
}

// Viewport returns the last recorded viewport dimensions.
func (e *Editor) Viewport() (width, height int) {
	return e.width, e.height
}

// line returns the current line.
func (e *Editor) line() []rune {
	return e.buf.Lines[e.cursor.Row]
}

// clampCol pulls the column back onto the current line.
func (e *Editor) clampCol() {
	if n := len(e.line()); e.cursor.Col > n {
		e.cursor.Col = n
	}
}
