package buffer

import "strings"

// Buffer holds text as an ordered sequence of lines.
// Lines is exported for the engine, which splices it directly.
type Buffer struct {
	Lines [][]rune
}

// NewBuffer creates a buffer containing a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{
		Lines: [][]rune{{}},
	}
}

// NewBufferFromString creates a buffer from text, splitting on '\n'.
// An empty string yields a single empty line.
func NewBufferFromString(text string) *Buffer {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return &Buffer{Lines: lines}
}

// LineCount returns the number of lines. It is always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.Lines)
}

// Line returns the runes of the given row.
// Returns nil if the row is out of range.
func (b *Buffer) Line(row int) []rune {
	if row < 0 || row >= len(b.Lines) {
		return nil
	}
	return b.Lines[row]
}

// LineLen returns the length of the given row in runes.
func (b *Buffer) LineLen(row int) int {
	return len(b.Line(row))
}

// LineText returns the given row as a string.
func (b *Buffer) LineText(row int) string {
	return string(b.Line(row))
}

// Strings returns every line as a string.
func (b *Buffer) Strings() []string {
	out := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		out[i] = string(l)
	}
	return out
}

// Text returns the full content with lines joined by '\n'.
func (b *Buffer) Text() string {
	return strings.Join(b.Strings(), "\n")
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b *Buffer) IsEmpty() bool {
	return len(b.Lines) == 1 && len(b.Lines[0]) == 0
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	lines := make([][]rune, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = append([]rune(nil), l...)
	}
	return &Buffer{Lines: lines}
}

// Contains reports whether p is a legal cursor position:
// 0 <= Row < LineCount and 0 <= Col <= LineLen(Row).
func (b *Buffer) Contains(p Point) bool {
	if p.Row < 0 || p.Row >= len(b.Lines) {
		return false
	}
	return p.Col >= 0 && p.Col <= len(b.Lines[p.Row])
}

// Clamp returns the nearest legal cursor position to p.
func (b *Buffer) Clamp(p Point) Point {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(b.Lines) {
		p.Row = len(b.Lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.Lines[p.Row]); p.Col > n {
		p.Col = n
	}
	return p
}
