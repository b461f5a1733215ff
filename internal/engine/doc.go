// Package engine provides the editor core.
//
// The Editor owns the buffer, the cursor, the secondary (yank/delete)
// register and the viewport dimensions, and it is the only writer of the
// shared mode. It applies input.Action values one at a time; every action
// is total over the legal state space, so Apply never fails.
//
// # Invariants
//
// After every Apply:
//
//   - the buffer holds at least one line
//   - 0 <= cursor.Row < LineCount
//   - 0 <= cursor.Col <= len(line[cursor.Row])
//
// The column may equal the line length, denoting the position after the
// last character.
//
// # Motions and Operators
//
// A motion with count n is applied as n single steps so that clamping
// happens between steps. With an operator, the range between the cursor
// before and after the motion is normalized to [start, end) and either
// copied into the register (yank) or copied and removed (delete). Either
// way the cursor ends at start.
//
// # Thread Safety
//
// Editor is not safe for concurrent use. The dispatch loop is its only
// caller. The mode cell it writes is itself synchronized.
package engine
