package vim

import (
	"strconv"

	"github.com/dshills/modal/internal/input/key"
)

// Reserved Normal-mode keys.
const (
	QuitKey   = 'q'
	InsertKey = 'i'
)

// ParseStatus indicates the result of parsing a key event.
type ParseStatus uint8

const (
	// StatusPending indicates the key was consumed and more input is needed.
	StatusPending ParseStatus = iota

	// StatusComplete indicates a complete command was parsed.
	StatusComplete

	// StatusInvalid indicates the pending command was discarded.
	StatusInvalid

	// StatusPassthrough indicates the key means nothing here and pending
	// state was left as it was.
	StatusPassthrough
)

// String returns a string representation of the status.
func (s ParseStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusComplete:
		return "complete"
	case StatusInvalid:
		return "invalid"
	case StatusPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// ParseState represents the current state of the parser.
type ParseState uint8

const (
	// StateInitial has no operator pending.
	StateInitial ParseState = iota

	// StateOperator has received an operator, waiting for count or motion.
	StateOperator
)

// String returns a string representation of the state.
func (s ParseState) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateOperator:
		return "operator"
	default:
		return "unknown"
	}
}

// CommandKind identifies what a completed command asks for.
type CommandKind uint8

const (
	// CommandMotion moves the cursor, optionally applying an operator.
	CommandMotion CommandKind = iota

	// CommandQuit ends the editor.
	CommandQuit

	// CommandInsert switches to Insert mode.
	CommandInsert
)

// Command represents a parsed Normal-mode command.
type Command struct {
	Kind CommandKind

	// Operator is OpNone for a plain motion.
	Operator Operator

	// Count is the repeat count, always at least 1.
	Count int

	// Motion is set for CommandMotion.
	Motion Motion
}

// ParseResult contains the result of parsing a key event.
type ParseResult struct {
	// Status indicates the parse result.
	Status ParseStatus

	// Command is the parsed command (if Status == StatusComplete).
	Command Command
}

// Parser parses Normal-mode key sequences into commands.
type Parser struct {
	state    ParseState
	operator Operator
	count    CountState
}

// NewParser creates a new Normal-mode command parser.
func NewParser() *Parser {
	return &Parser{}
}

// Reset clears all pending state.
func (p *Parser) Reset() {
	p.state = StateInitial
	p.operator = OpNone
	p.count.Reset()
}

// State returns the current parser state.
func (p *Parser) State() ParseState {
	return p.state
}

// PendingOperator returns the pending operator, or OpNone.
func (p *Parser) PendingOperator() Operator {
	return p.operator
}

// PendingCount returns the effective pending count (1 if none).
func (p *Parser) PendingCount() int {
	return p.count.Get()
}

// IsIdle returns true if nothing is pending.
func (p *Parser) IsIdle() bool {
	return p.state == StateInitial && !p.count.Active()
}

// PendingKeys returns the pending input for display, e.g. "d3".
func (p *Parser) PendingKeys() string {
	var s string
	if p.operator != OpNone {
		s = string(p.operator.Key())
	}
	if p.count.Active() {
		s += strconv.Itoa(p.count.Value)
	}
	return s
}

// Parse processes a key event and returns the result.
func (p *Parser) Parse(ev key.Event) ParseResult {
	if ev.Is(QuitKey) {
		p.Reset()
		return ParseResult{
			Status:  StatusComplete,
			Command: Command{Kind: CommandQuit, Count: 1},
		}
	}

	switch p.state {
	case StateOperator:
		return p.parseOperator(ev)
	default:
		return p.parseInitial(ev)
	}
}

// parseInitial handles input with no operator pending.
func (p *Parser) parseInitial(ev key.Event) ParseResult {
	if m, ok := GetMotion(ev); ok {
		return p.completeMotion(m)
	}

	if ev.Is(InsertKey) {
		p.Reset()
		return ParseResult{
			Status:  StatusComplete,
			Command: Command{Kind: CommandInsert, Count: 1},
		}
	}

	if ev.IsRune() && !ev.IsModified() {
		if op := GetOperator(ev.Rune); op != OpNone {
			p.operator = op
			p.state = StateOperator
			return ParseResult{Status: StatusPending}
		}
		if p.count.SetDigit(ev.Rune) {
			return ParseResult{Status: StatusPending}
		}
	}

	if ev.IsEscape() {
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}

	return ParseResult{Status: StatusPassthrough}
}

// parseOperator handles input after an operator key.
func (p *Parser) parseOperator(ev key.Event) ParseResult {
	if ev.IsEscape() {
		p.Reset()
		return ParseResult{Status: StatusInvalid}
	}

	if ev.IsRune() && !ev.IsModified() && p.count.SetDigit(ev.Rune) {
		return ParseResult{Status: StatusPending}
	}

	if m, ok := GetMotion(ev); ok {
		return p.completeMotion(m)
	}

	p.Reset()
	return ParseResult{Status: StatusInvalid}
}

// completeMotion builds a motion command from pending state and resets.
func (p *Parser) completeMotion(m Motion) ParseResult {
	cmd := Command{
		Kind:     CommandMotion,
		Operator: p.operator,
		Count:    p.count.Get(),
		Motion:   m,
	}

	p.Reset()
	return ParseResult{
		Status:  StatusComplete,
		Command: cmd,
	}
}
