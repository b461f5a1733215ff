// Package input turns raw key events into editor actions.
//
// The Interpreter consumes one key.Event at a time and yields zero or one
// Action. Which branch handles the key depends on the current mode, read
// from a shared mode.State:
//
//   - Insert mode maps keys directly: Escape returns to Normal, printable
//     characters and Tab become Write, Backspace and Enter become BackSpace
//     and Enter.
//   - Normal mode runs the vim grammar, accumulating an operator and count
//     until a motion key resolves them into a single Motion action.
//
// Action is the sole contract between interpretation and mutation: the
// editor engine never sees key codes.
package input
