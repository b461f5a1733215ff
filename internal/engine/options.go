package engine

import (
	"github.com/dshills/modal/internal/engine/buffer"
	"github.com/dshills/modal/internal/input/mode"
)

// TabWidth is the number of spaces a tab write inserts.
const TabWidth = 4

// Option configures an Editor during creation.
type Option func(*Editor)

// WithContent sets the initial buffer content, split on '\n'.
// The cursor starts at (0, 0).
func WithContent(content string) Option {
	return func(e *Editor) {
		e.buf = buffer.NewBufferFromString(content)
	}
}

// WithModeState shares an existing mode cell with the editor.
func WithModeState(state *mode.State) Option {
	return func(e *Editor) {
		if state != nil {
			e.mode = state
		}
	}
}

// WithViewport sets the initial viewport dimensions.
func WithViewport(width, height int) Option {
	return func(e *Editor) {
		e.width = width
		e.height = height
	}
}
