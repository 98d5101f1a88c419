package ast

import "fmt"

type Operator int

const (
	OP_UNKNOWN Operator = iota
	OP_LITERAL
	OP_ADD
	OP_SUBTRACT
	OP_MULTIPLY
	OP_DIVIDE
)

// Symbol returns the operator as it is written in an emitted instruction.
func (op Operator) Symbol() string {
	switch op {
	case OP_ADD:
		return "+"
	case OP_SUBTRACT:
		return "-"
	case OP_MULTIPLY:
		return "*"
	case OP_DIVIDE:
		return "/"
	default:
		return "?"
	}
}

func (op Operator) IsArithmetic() bool {
	switch op {
	case OP_ADD, OP_SUBTRACT, OP_MULTIPLY, OP_DIVIDE:
		return true
	default:
		return false
	}
}

func (op Operator) DebugString() string {
	switch op {
	case OP_LITERAL:
		return "OP_LITERAL"
	case OP_ADD:
		return "OP_ADD"
	case OP_SUBTRACT:
		return "OP_SUBTRACT"
	case OP_MULTIPLY:
		return "OP_MULTIPLY"
	case OP_DIVIDE:
		return "OP_DIVIDE"
	default:
		return fmt.Sprintf("Invalid operator: %d", op)
	}
}
