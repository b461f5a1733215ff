package input

import (
	"sync"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/input/vim"
)

// Interpreter translates key events into actions.
//
// Handle is called from the single input goroutine. The mode it reads may
// be written concurrently by the dispatch goroutine through mode.State, and
// Pending may be called from any goroutine.
type Interpreter struct {
	mode *mode.State

	mu     sync.Mutex // guards parser
	parser *vim.Parser

	metrics Metrics
}

// NewInterpreter creates an interpreter reading the given shared mode.
func NewInterpreter(state *mode.State) *Interpreter {
	return &Interpreter{
		mode:   state,
		parser: vim.NewParser(),
	}
}

// Handle processes one key event.
// Returns the resolved action and true, or false if the key produced no
// action (a partial command, a cancellation, or an ignored key).
func (in *Interpreter) Handle(ev key.Event) (Action, bool) {
	in.metrics.keyEventsTotal.Add(1)

	in.mu.Lock()
	defer in.mu.Unlock()

	var (
		action Action
		ok     bool
	)
	switch in.mode.Current() {
	case mode.Insert:
		// Pending command state never survives into Insert mode.
		in.parser.Reset()
		action, ok = handleInsert(ev)
	default:
		action, ok = in.handleNormal(ev)
	}

	if ok {
		in.metrics.actionsTotal.Add(1)
	}
	return action, ok
}

// Resize resolves a viewport resize. It bypasses mode and pending state.
func (in *Interpreter) Resize(width, height int) Action {
	in.metrics.actionsTotal.Add(1)
	return WindowResize(width, height)
}

// Pending returns the pending Normal-mode input for display, e.g. "d3".
func (in *Interpreter) Pending() string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.parser.PendingKeys()
}

// Metrics returns a snapshot of interpreter counters.
func (in *Interpreter) Metrics() MetricsSnapshot {
	return in.metrics.Snapshot()
}

// handleInsert maps a key directly to an action.
func handleInsert(ev key.Event) (Action, bool) {
	switch ev.Key {
	case key.KeyEscape:
		return ChangeMode(mode.Normal), true
	case key.KeyTab:
		return Write('\t'), true
	case key.KeyBackspace:
		return BackSpace(), true
	case key.KeyEnter:
		return Enter(), true
	case key.KeyRune:
		if ev.IsChar() && !ev.IsModified() {
			return Write(ev.Rune), true
		}
	}
	return Action{}, false
}

// handleNormal feeds the key to the grammar parser.
func (in *Interpreter) handleNormal(ev key.Event) (Action, bool) {
	result := in.parser.Parse(ev)

	switch result.Status {
	case vim.StatusComplete:
		cmd := result.Command
		switch cmd.Kind {
		case vim.CommandQuit:
			return Quit(), true
		case vim.CommandInsert:
			return ChangeMode(mode.Insert), true
		default:
			return Move(cmd.Operator, cmd.Count, cmd.Motion), true
		}
	case vim.StatusInvalid:
		in.metrics.cancelledTotal.Add(1)
	case vim.StatusPassthrough:
		in.metrics.ignoredTotal.Add(1)
	}
	return Action{}, false
}
