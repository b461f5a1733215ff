package backend

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/modal/internal/input/key"
)

func TestNullBackendInit(t *testing.T) {
	b := NewNullBackend(80, 24)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	w, h := b.Size()
	if w != 80 || h != 24 {
		t.Errorf("expected size (80, 24), got (%d, %d)", w, h)
	}
	if got := b.GetCell(0, 0); got != EmptyCell() {
		t.Errorf("expected empty cell, got %+v", got)
	}
}

func TestNullBackendSetGetCell(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	cell := NewStyledCell('X', tcell.StyleDefault.Reverse(true))
	b.SetCell(10, 5, cell)

	if got := b.GetCell(10, 5); got != cell {
		t.Errorf("cell mismatch: expected %+v, got %+v", cell, got)
	}

	// Out of bounds should be ignored/return empty
	b.SetCell(-1, 0, cell)
	b.SetCell(100, 0, cell)

	if got := b.GetCell(-1, 0); got != EmptyCell() {
		t.Error("out of bounds should return empty cell")
	}
}

func TestNullBackendClear(t *testing.T) {
	b := NewNullBackend(10, 2)
	b.Init()
	b.SetCell(0, 0, NewCell('a'))
	b.Clear()

	if got := b.RowText(0); got != "" {
		t.Errorf("expected cleared row, got %q", got)
	}
}

func TestNullBackendCursor(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.ShowCursor(3, 4)
	b.SetCursorStyle(CursorBar)

	x, y, visible := b.CursorPosition()
	if x != 3 || y != 4 || !visible {
		t.Errorf("expected visible cursor at (3, 4), got (%d, %d) visible=%v", x, y, visible)
	}
	if got := b.CursorStyleValue(); got != CursorBar {
		t.Errorf("expected bar cursor, got %v", got)
	}

	b.HideCursor()
	if _, _, visible := b.CursorPosition(); visible {
		t.Error("cursor should be hidden")
	}
}

func TestNullBackendEvents(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	ev := KeyEvent(key.NewRuneEvent('a', key.ModNone))
	b.PostEvent(ev)

	got := b.PollEvent()
	if got.Type != EventKey || !got.Key.Is('a') {
		t.Errorf("expected key 'a', got %+v", got)
	}
}

func TestNullBackendResize(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	b.Resize(40, 10)

	if w, h := b.Size(); w != 40 || h != 10 {
		t.Errorf("expected size (40, 10), got (%d, %d)", w, h)
	}
	got := b.PollEvent()
	if got.Type != EventResize || got.Width != 40 || got.Height != 10 {
		t.Errorf("expected resize event 40x10, got %+v", got)
	}
}

func TestNullBackendShutdownUnblocksPoll(t *testing.T) {
	b := NewNullBackend(80, 24)
	b.Init()

	done := make(chan Event)
	go func() { done <- b.PollEvent() }()

	b.Shutdown()
	b.Shutdown()

	select {
	case ev := <-done:
		if ev.Type != EventClosed {
			t.Errorf("expected EventClosed, got %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("PollEvent did not return after Shutdown")
	}

	// Posting after shutdown must not block.
	b.PostEvent(KeyEvent(key.NewRuneEvent('x', key.ModNone)))
}

func TestCursorStyleString(t *testing.T) {
	tests := []struct {
		style CursorStyle
		want  string
	}{
		{CursorBlock, "block"},
		{CursorUnderline, "underline"},
		{CursorBar, "bar"},
		{CursorHidden, "hidden"},
		{CursorStyle(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("CursorStyle(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}
