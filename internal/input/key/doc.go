// Package key defines the abstract key events consumed by the interpreter.
//
// Events are independent of the terminal library that produced them: the
// backend translates its native events into Event values, and everything
// downstream works only with this package's types.
//
// Character keys use KeyRune with the character in Event.Rune. Named keys
// (Escape, Enter, Tab, Backspace, arrows, Home, End) use their own Key value.
package key
