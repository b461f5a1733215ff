package vim

import (
	"fmt"

	"github.com/dshills/modal/internal/input/key"
)

// Motion is a cursor-repositioning primitive.
type Motion uint8

const (
	// MotionNone is the zero value and never appears in a parsed command.
	MotionNone Motion = iota

	MotionUp
	MotionDown
	MotionLeft
	MotionRight

	// MotionStart moves to column 0.
	MotionStart

	// MotionEnd moves to the position after the last character.
	MotionEnd

	// MotionWord moves to the next space on the line, or to line end.
	MotionWord
)

// motionDef describes a motion's name and key bindings.
type motionDef struct {
	name    string
	runes   string
	special []key.Key
}

var motionDefs = map[Motion]motionDef{
	MotionUp:    {name: "up", runes: "k", special: []key.Key{key.KeyUp}},
	MotionDown:  {name: "down", runes: "j", special: []key.Key{key.KeyDown}},
	MotionLeft:  {name: "left", runes: "h", special: []key.Key{key.KeyLeft}},
	MotionRight: {name: "right", runes: "l", special: []key.Key{key.KeyRight}},
	MotionStart: {name: "lineStart", runes: "0", special: []key.Key{key.KeyHome}},
	MotionEnd:   {name: "lineEnd", runes: "$", special: []key.Key{key.KeyEnd}},
	MotionWord:  {name: "word", runes: "w"},
}

// runeMotions and keyMotions are built from motionDefs.
var (
	runeMotions = make(map[rune]Motion)
	keyMotions  = make(map[key.Key]Motion)
)

func init() {
	for m, def := range motionDefs {
		for _, r := range def.runes {
			runeMotions[r] = m
		}
		for _, k := range def.special {
			keyMotions[k] = m
		}
	}
}

// String returns the motion name.
func (m Motion) String() string {
	if def, ok := motionDefs[m]; ok {
		return def.name
	}
	if m == MotionNone {
		return "none"
	}
	return fmt.Sprintf("Motion(%d)", m)
}

// GetMotion returns the motion bound to the key event.
// Modified keys (Ctrl, Alt, Meta) never name a motion.
func GetMotion(ev key.Event) (Motion, bool) {
	if ev.IsModified() {
		return MotionNone, false
	}
	if ev.IsRune() {
		m, ok := runeMotions[ev.Rune]
		return m, ok
	}
	m, ok := keyMotions[ev.Key]
	return m, ok
}

// Motions returns every motion in declaration order.
func Motions() []Motion {
	return []Motion{MotionUp, MotionDown, MotionLeft, MotionRight, MotionStart, MotionEnd, MotionWord}
}
