// Package mode provides the editor's two modes and the shared mode cell.
//
// The editor has exactly two modes:
//   - Normal: keys are commands (motions, operators, counts)
//   - Insert: keys are literal text input
//
// # Sharing
//
// The interpreter goroutine reads the current mode on every keystroke while
// the dispatch goroutine is its only writer. State guards the value with a
// read-write mutex; the critical section is a single read or write and is
// never held while calling out to other code.
//
// A reader may observe a mode change one keystroke late. The interpreter's
// pending-state reset rules bound the effect to a single misrouted key.
package mode
