// Package vim provides the Normal-mode command grammar.
//
// A Normal-mode command is
//
//	[operator] [count] motion
//
// where the operator (d, y) and the count (a single digit 1-9) are optional
// and may arrive in either order. A motion key always terminates the
// command. The quit key resolves immediately regardless of pending state,
// and the insert key resolves immediately when no operator is pending.
//
// Examples:
//   - "l": motion=right, count=1
//   - "3j": motion=down, count=3
//   - "d3l" and "3dl": operator=delete, count=3, motion=right
//   - "yw": operator=yank, motion=word
//
// # Parser States
//
// The parser is a small state machine over pending operator and pending
// count:
//
//  1. Initial: no operator pending; a count may be pending
//  2. Operator: an operator is pending, waiting for a count or motion
//
// Escape discards everything pending. While an operator is pending, any key
// that is not a digit, motion, quit or escape also discards it.
//
// Counts are single-digit: a later digit overwrites an earlier one rather
// than being concatenated.
//
// # Usage
//
//	parser := vim.NewParser()
//	result := parser.Parse(keyEvent)
//	switch result.Status {
//	case vim.StatusComplete:
//	    // Execute result.Command
//	case vim.StatusPending:
//	    // Wait for more input
//	case vim.StatusInvalid:
//	    // Pending command discarded
//	}
package vim
