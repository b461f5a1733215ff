package input

import (
	"testing"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/input/vim"
)

func runeKey(r rune) key.Event {
	return key.NewRuneEvent(r, key.ModNone)
}

func specialKey(k key.Key) key.Event {
	return key.NewSpecialEvent(k, key.ModNone)
}

// feed sends events and collects every emitted action.
func feed(in *Interpreter, events ...key.Event) []Action {
	var out []Action
	for _, ev := range events {
		if a, ok := in.Handle(ev); ok {
			out = append(out, a)
		}
	}
	return out
}

func TestInsertModeMapping(t *testing.T) {
	tests := []struct {
		name   string
		ev     key.Event
		want   Action
		wantOK bool
	}{
		{"escape", specialKey(key.KeyEscape), ChangeMode(mode.Normal), true},
		{"letter", runeKey('h'), Write('h'), true},
		{"space", runeKey(' '), Write(' '), true},
		{"punctuation", runeKey('!'), Write('!'), true},
		{"tab", specialKey(key.KeyTab), Write('\t'), true},
		{"backspace", specialKey(key.KeyBackspace), BackSpace(), true},
		{"enter", specialKey(key.KeyEnter), Enter(), true},
		{"arrow ignored", specialKey(key.KeyLeft), Action{}, false},
		{"ctrl ignored", key.NewRuneEvent('s', key.ModCtrl), Action{}, false},
		{"quit key is text", runeKey('q'), Write('q'), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterpreter(mode.NewState(mode.Insert))
			got, ok := in.Handle(tt.ev)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalModeQuit(t *testing.T) {
	in := NewInterpreter(mode.NewState(mode.Normal))
	got := feed(in, runeKey('d'), runeKey('q'))
	if len(got) != 1 || got[0].Kind != ActionQuit {
		t.Fatalf("expected a single quit, got %v", got)
	}
}

func TestNormalModeInsertRequest(t *testing.T) {
	in := NewInterpreter(mode.NewState(mode.Normal))
	got := feed(in, runeKey('i'))
	if len(got) != 1 || got[0] != ChangeMode(mode.Insert) {
		t.Fatalf("expected changeMode(Insert), got %v", got)
	}
}

func TestOperatorCountMotionEmitsOneAction(t *testing.T) {
	in := NewInterpreter(mode.NewState(mode.Normal))

	got := feed(in, runeKey('d'), runeKey('3'), specialKey(key.KeyRight))
	if len(got) != 1 {
		t.Fatalf("expected exactly one action, got %d: %v", len(got), got)
	}
	want := Move(vim.OpDelete, 3, vim.MotionRight)
	if got[0] != want {
		t.Errorf("got %v, want %v", got[0], want)
	}
	if in.Pending() != "" {
		t.Errorf("expected empty pending state, got %q", in.Pending())
	}
}

func TestCancelLeavesNoPendingState(t *testing.T) {
	in := NewInterpreter(mode.NewState(mode.Normal))

	got := feed(in, runeKey('d'), runeKey('3'), specialKey(key.KeyEscape))
	if len(got) != 0 {
		t.Fatalf("expected no actions, got %v", got)
	}

	got = feed(in, runeKey('l'))
	if len(got) != 1 || got[0] != Move(vim.OpNone, 1, vim.MotionRight) {
		t.Fatalf("expected a bare motion, got %v", got)
	}

	m := in.Metrics()
	if m.Cancelled != 1 {
		t.Errorf("expected 1 cancellation, got %d", m.Cancelled)
	}
	if m.KeyEvents != 4 || m.Actions != 1 {
		t.Errorf("unexpected metrics %+v", m)
	}
}

func TestModeChangeDiscardsPendingState(t *testing.T) {
	state := mode.NewState(mode.Normal)
	in := NewInterpreter(state)

	feed(in, runeKey('y'), runeKey('2'))
	if in.Pending() != "y2" {
		t.Fatalf("expected pending y2, got %q", in.Pending())
	}

	state.Set(mode.Insert)
	feed(in, runeKey('a'))
	state.Set(mode.Normal)

	got := feed(in, runeKey('j'))
	if len(got) != 1 || got[0] != Move(vim.OpNone, 1, vim.MotionDown) {
		t.Fatalf("expected a bare motion after mode round-trip, got %v", got)
	}
}

func TestResizeBypassesPendingState(t *testing.T) {
	in := NewInterpreter(mode.NewState(mode.Normal))
	feed(in, runeKey('d'))

	if got := in.Resize(80, 24); got != WindowResize(80, 24) {
		t.Fatalf("unexpected resize action %v", got)
	}
	if in.Pending() != "d" {
		t.Errorf("resize should not touch pending state, got %q", in.Pending())
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{Quit(), "quit"},
		{ChangeMode(mode.Insert), "changeMode(Insert)"},
		{Write('x'), "write('x')"},
		{BackSpace(), "backspace"},
		{Enter(), "enter"},
		{Move(vim.OpNone, 2, vim.MotionDown), "motion(2 down)"},
		{Move(vim.OpYank, 1, vim.MotionWord), "motion(yank 1 word)"},
		{WindowResize(80, 24), "windowResize(80x24)"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveClampsCount(t *testing.T) {
	if a := Move(vim.OpNone, 0, vim.MotionLeft); a.Count != 1 {
		t.Errorf("expected count 1, got %d", a.Count)
	}
}
