package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyLeft, "Left"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestEventPredicates(t *testing.T) {
	plain := NewRuneEvent('d', ModNone)
	shifted := NewRuneEvent('D', ModShift)
	ctrl := NewRuneEvent('d', ModCtrl)
	esc := NewSpecialEvent(KeyEscape, ModNone)

	if !plain.Is('d') {
		t.Error("expected plain d to match")
	}
	if !shifted.Is('D') {
		t.Error("shift should not count as a modifier for runes")
	}
	if ctrl.Is('d') {
		t.Error("ctrl+d should not match plain d")
	}
	if !esc.IsEscape() || esc.IsRune() {
		t.Error("escape predicates wrong")
	}
	if (Event{Key: KeyRune}).IsRune() {
		t.Error("zero rune should not be a rune event")
	}
	if NewRuneEvent('\x01', ModNone).IsChar() {
		t.Error("control character should not be printable")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('x', ModCtrl), "Ctrl+x"},
		{NewSpecialEvent(KeyEscape, ModNone), "Esc"},
		{NewSpecialEvent(KeyUp, ModShift), "Shift+Up"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
