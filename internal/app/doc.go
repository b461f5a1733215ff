// Package app provides the main application structure and coordination
// for the Modal editor. It wires together the input interpreter, the
// editor core and the renderer, and manages the application lifecycle.
//
// # Tasks
//
// Two goroutines cooperate through an unbounded FIFO:
//
//	backend.PollEvent ──► Interpreter.Handle ──► ActionQueue.Push      (input)
//	ActionQueue.Pop ──► Editor.Apply ──► Renderer.Draw                (dispatch)
//
// The input goroutine reads the shared mode; the dispatch goroutine is the
// only writer of it. Actions are applied strictly in the order their keys
// were read. A Quit action ends the dispatch loop with ErrQuit; the input
// goroutine is not waited for and exits when the backend shuts down.
//
// # Errors
//
// Steady-state editing never fails. Startup failures are reported as
// *InitError and map to a non-zero exit status; ErrQuit is a normal exit.
package app
