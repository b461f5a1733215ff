package input

import (
	"fmt"

	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/input/vim"
)

// ActionKind identifies the variant of an Action.
type ActionKind uint8

const (
	// ActionQuit ends the dispatch loop.
	ActionQuit ActionKind = iota
	// ActionChangeMode switches the editor mode.
	ActionChangeMode
	// ActionWrite inserts a character.
	ActionWrite
	// ActionBackSpace deletes backwards, joining lines at column 0.
	ActionBackSpace
	// ActionEnter splits the line at the cursor.
	ActionEnter
	// ActionMotion moves the cursor and optionally applies an operator.
	ActionMotion
	// ActionWindowResize records new viewport dimensions.
	ActionWindowResize
)

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionQuit:
		return "quit"
	case ActionChangeMode:
		return "changeMode"
	case ActionWrite:
		return "write"
	case ActionBackSpace:
		return "backspace"
	case ActionEnter:
		return "enter"
	case ActionMotion:
		return "motion"
	case ActionWindowResize:
		return "windowResize"
	default:
		return "unknown"
	}
}

// Action is a fully resolved unit of work for the editor engine.
// Only the fields belonging to Kind are meaningful.
type Action struct {
	Kind ActionKind

	// Mode is the target mode for ActionChangeMode.
	Mode mode.Mode

	// Rune is the character for ActionWrite.
	Rune rune

	// Operator, Count and Motion describe ActionMotion.
	// Operator is vim.OpNone for a plain cursor move.
	Operator vim.Operator
	Count    int
	Motion   vim.Motion

	// Width and Height are the viewport size for ActionWindowResize.
	Width  int
	Height int
}

// Quit creates a quit action.
func Quit() Action {
	return Action{Kind: ActionQuit}
}

// ChangeMode creates a mode change action.
func ChangeMode(m mode.Mode) Action {
	return Action{Kind: ActionChangeMode, Mode: m}
}

// Write creates a character write action.
func Write(r rune) Action {
	return Action{Kind: ActionWrite, Rune: r}
}

// BackSpace creates a backspace action.
func BackSpace() Action {
	return Action{Kind: ActionBackSpace}
}

// Enter creates a line split action.
func Enter() Action {
	return Action{Kind: ActionEnter}
}

// Move creates a motion action. A count below 1 is treated as 1.
func Move(op vim.Operator, count int, m vim.Motion) Action {
	if count < 1 {
		count = 1
	}
	return Action{Kind: ActionMotion, Operator: op, Count: count, Motion: m}
}

// WindowResize creates a viewport resize action.
func WindowResize(width, height int) Action {
	return Action{Kind: ActionWindowResize, Width: width, Height: height}
}

// String returns a human-readable representation for logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionChangeMode:
		return fmt.Sprintf("changeMode(%s)", a.Mode)
	case ActionWrite:
		return fmt.Sprintf("write(%q)", a.Rune)
	case ActionMotion:
		if a.Operator == vim.OpNone {
			return fmt.Sprintf("motion(%d %s)", a.Count, a.Motion)
		}
		return fmt.Sprintf("motion(%s %d %s)", a.Operator, a.Count, a.Motion)
	case ActionWindowResize:
		return fmt.Sprintf("windowResize(%dx%d)", a.Width, a.Height)
	default:
		return a.Kind.String()
	}
}
