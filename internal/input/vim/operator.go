package vim

import "fmt"

// Operator is a buffer verb applied over the range swept by a motion.
type Operator uint8

const (
	// OpNone means no operator: the motion only moves the cursor.
	OpNone Operator = iota

	// OpDelete removes the range and stores it in the register.
	OpDelete

	// OpYank stores the range in the register without removing it.
	OpYank
)

// operatorDef describes an operator's key binding and behavior.
type operatorDef struct {
	name        string
	key         rune
	changesText bool
}

var operatorDefs = map[Operator]operatorDef{
	OpDelete: {name: "delete", key: 'd', changesText: true},
	OpYank:   {name: "yank", key: 'y', changesText: false},
}

// operators maps operator keys to operators.
var operators = map[rune]Operator{
	'd': OpDelete,
	'y': OpYank,
}

// String returns the operator name.
func (o Operator) String() string {
	if o == OpNone {
		return "none"
	}
	if def, ok := operatorDefs[o]; ok {
		return def.name
	}
	return fmt.Sprintf("Operator(%d)", o)
}

// Key returns the key that triggers the operator, or 0 for OpNone.
func (o Operator) Key() rune {
	return operatorDefs[o].key
}

// ChangesText reports whether the operator modifies the buffer.
func (o Operator) ChangesText() bool {
	return operatorDefs[o].changesText
}

// GetOperator returns the operator for the given key.
// Returns OpNone if the key is not an operator.
func GetOperator(key rune) Operator {
	return operators[key]
}

