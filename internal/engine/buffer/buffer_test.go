package buffer

import "testing"

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if b.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", b.LineCount())
	}
	if b.LineLen(0) != 0 {
		t.Errorf("expected empty line, got %q", b.LineText(0))
	}
	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
}

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
	}{
		{"empty", "", []string{""}},
		{"single", "hello", []string{"hello"}},
		{"multi", "abc\ndef", []string{"abc", "def"}},
		{"trailing newline", "abc\n", []string{"abc", ""}},
		{"unicode", "héllo\nwörld", []string{"héllo", "wörld"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			got := b.Strings()
			if len(got) != len(tt.lines) {
				t.Fatalf("expected %d lines, got %d: %q", len(tt.lines), len(got), got)
			}
			for i := range got {
				if got[i] != tt.lines[i] {
					t.Errorf("line %d: expected %q, got %q", i, tt.lines[i], got[i])
				}
			}
			if b.Text() != tt.text {
				t.Errorf("Text() = %q, want %q", b.Text(), tt.text)
			}
		})
	}
}

func TestBufferLineOutOfRange(t *testing.T) {
	b := NewBufferFromString("abc")

	if b.Line(-1) != nil {
		t.Error("expected nil for negative row")
	}
	if b.Line(1) != nil {
		t.Error("expected nil for row past end")
	}
	if b.LineLen(5) != 0 {
		t.Errorf("expected 0 length, got %d", b.LineLen(5))
	}
}

func TestBufferLineLenCountsRunes(t *testing.T) {
	b := NewBufferFromString("日本語")
	if b.LineLen(0) != 3 {
		t.Errorf("expected 3 runes, got %d", b.LineLen(0))
	}
}

func TestBufferClone(t *testing.T) {
	b := NewBufferFromString("abc\ndef")
	c := b.Clone()

	c.Lines[0][0] = 'X'
	c.Lines = append(c.Lines, []rune("ghi"))

	if b.LineText(0) != "abc" {
		t.Errorf("original modified through clone: %q", b.LineText(0))
	}
	if b.LineCount() != 2 {
		t.Errorf("original line count changed: %d", b.LineCount())
	}
}

func TestBufferContainsAndClamp(t *testing.T) {
	b := NewBufferFromString("abc\n\nhello")

	tests := []struct {
		p        Point
		contains bool
		clamped  Point
	}{
		{Point{0, 0}, true, Point{0, 0}},
		{Point{0, 3}, true, Point{0, 3}},
		{Point{0, 4}, false, Point{0, 3}},
		{Point{1, 0}, true, Point{1, 0}},
		{Point{1, 2}, false, Point{1, 0}},
		{Point{3, 0}, false, Point{2, 0}},
		{Point{-1, -1}, false, Point{0, 0}},
		{Point{5, 9}, false, Point{2, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.contains {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.contains)
			}
			if got := b.Clamp(tt.p); got != tt.clamped {
				t.Errorf("Clamp(%v) = %v, want %v", tt.p, got, tt.clamped)
			}
		})
	}
}
