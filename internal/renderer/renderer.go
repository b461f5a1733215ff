package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modal/internal/engine/buffer"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer/backend"
)

// statusRows is the number of rows reserved below the text area.
const statusRows = 2

// State is the view of the editor the renderer needs for one frame.
type State struct {
	Lines   [][]rune
	Cursor  buffer.Point
	Mode    mode.Mode
	Pending string // keys of an unfinished command, e.g. "d3"
}

// Options configures the renderer.
type Options struct {
	StatusLine  bool        // Draw the mode indicator line
	TextStyle   tcell.Style // Style for buffer text
	StatusStyle tcell.Style // Style for the mode indicator
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		StatusLine:  true,
		TextStyle:   tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta),
		StatusStyle: tcell.StyleDefault.Foreground(tcell.ColorDarkMagenta),
	}
}

// Renderer draws frames to a backend.
// It is used from the dispatch loop only and is not safe for concurrent use.
type Renderer struct {
	opts     Options
	backend  backend.Backend
	viewport Viewport
	frames   uint64
}

// New creates a new renderer with the given backend and options.
func New(b backend.Backend, opts Options) *Renderer {
	return &Renderer{
		opts:    opts,
		backend: b,
	}
}

// Options returns the current options.
func (r *Renderer) Options() Options {
	return r.opts
}

// SetStatusLine toggles the mode indicator line.
func (r *Renderer) SetStatusLine(enabled bool) {
	r.opts.StatusLine = enabled
}

// Viewport returns the scroll position used by the last frame.
func (r *Renderer) Viewport() Viewport {
	return r.viewport
}

// FrameCount returns the number of frames drawn.
func (r *Renderer) FrameCount() uint64 {
	return r.frames
}

// Draw renders one complete frame.
func (r *Renderer) Draw(s State) {
	width, height := r.backend.Size()
	textHeight := height
	if r.opts.StatusLine {
		textHeight = height - statusRows
	}
	if textHeight < 0 {
		textHeight = 0
	}

	var cursorLine []rune
	if s.Cursor.Row >= 0 && s.Cursor.Row < len(s.Lines) {
		cursorLine = s.Lines[s.Cursor.Row]
	}
	cursorCol := screenColumn(cursorLine, s.Cursor.Col)
	r.viewport.Resize(width, textHeight)
	r.viewport.ScrollToReveal(s.Cursor.Row, cursorCol)

	r.backend.Clear()
	r.drawText(s.Lines, width, textHeight)
	if r.opts.StatusLine && height >= statusRows {
		r.drawStatus(s, width, height-statusRows)
	}
	r.drawCursor(s, cursorCol, textHeight)

	r.backend.Show()
	r.frames++
}

// drawText paints the visible buffer lines.
func (r *Renderer) drawText(lines [][]rune, width, textHeight int) {
	top, left := r.viewport.Top(), r.viewport.Left()
	for y := 0; y < textHeight; y++ {
		row := top + y
		if row >= len(lines) {
			break
		}
		r.drawRunes(lines[row], -left, y, width, r.opts.TextStyle)
	}
}

// drawStatus paints the mode name and any pending command keys.
func (r *Renderer) drawStatus(s State, width, y int) {
	x := r.drawRunes([]rune(s.Mode.String()), 0, y, width, r.opts.StatusStyle)
	if s.Pending == "" {
		return
	}
	pending := []rune(s.Pending)
	start := width - backend.StringWidth(s.Pending)
	if start <= x {
		return
	}
	r.drawRunes(pending, start, y, width, r.opts.StatusStyle)
}

// drawRunes paints rs on row y starting at column x, clipping to [0, width).
// It returns the column after the last rune.
func (r *Renderer) drawRunes(rs []rune, x, y, width int, style tcell.Style) int {
	for _, ch := range rs {
		w := backend.RuneWidth(ch)
		if x >= width {
			break
		}
		if x >= 0 && x+w <= width {
			r.backend.SetCell(x, y, backend.NewStyledCell(ch, style))
			if w == 2 {
				r.backend.SetCell(x+1, y, backend.ContinuationCell(style))
			}
		}
		x += w
	}
	return x
}

// drawCursor positions the cursor, hiding it when it is outside the text area.
func (r *Renderer) drawCursor(s State, cursorCol, textHeight int) {
	x := cursorCol - r.viewport.Left()
	y := s.Cursor.Row - r.viewport.Top()
	if y < 0 || y >= textHeight || x < 0 {
		r.backend.HideCursor()
		return
	}
	r.backend.SetCursorStyle(cursorStyle(s.Mode))
	r.backend.ShowCursor(x, y)
}

// cursorStyle maps the mode's cursor shape onto the backend's.
func cursorStyle(m mode.Mode) backend.CursorStyle {
	if m.CursorStyle() == mode.CursorBar {
		return backend.CursorBar
	}
	return backend.CursorBlock
}

// screenColumn returns the display column of rune index col in line.
func screenColumn(line []rune, col int) int {
	if col > len(line) {
		col = len(line)
	}
	x := 0
	for _, ch := range line[:max(col, 0)] {
		x += backend.RuneWidth(ch)
	}
	return x
}
