// Package buffer provides the line-oriented text storage used by the editor
// core.
//
// A Buffer is an ordered sequence of lines, each line an ordered sequence of
// runes. A Buffer is never empty: construction yields exactly one empty line
// and every structural edit performed by the engine preserves at least one
// line.
//
// The buffer itself carries no editing behavior. Line splitting, joining and
// range removal live in the engine package, because they are inseparable
// from cursor adjustment.
//
// Position Types:
//
//   - Point: row and column position (0-indexed, column in runes)
//   - Range: half-open span [Start, End) between two points
//
// Thread Safety:
//
// Buffer is not safe for concurrent use. The engine owns its buffer and
// mutates it from a single goroutine.
package buffer
