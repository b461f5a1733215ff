// Package renderer paints editor state onto a terminal backend.
//
// The screen is split into a text area and a status line:
//
//	row 0 .. height-3   buffer lines (scrolled to keep the cursor visible)
//	row height-2        mode name and pending command keys
//	row height-1        blank
//
// When the status line is disabled the text area takes the full height.
//
// Draw takes a State snapshot, so the renderer never reaches into the
// editor core. Cell widths come from go-runewidth; wide runes occupy two
// columns and are never split at the right edge.
//
// Usage:
//
//	b, _ := backend.NewTerminal()
//	r := renderer.New(b, renderer.DefaultOptions())
//	r.Draw(renderer.State{Lines: lines, Cursor: cur, Mode: mode.Normal})
package renderer
