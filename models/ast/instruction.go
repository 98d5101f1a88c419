package ast

import (
	"fmt"
	"strings"
)

// Instruction is one line of three-address code: a binary operation whose
// result is bound to a named destination.
type Instruction struct {
	Result       string
	LeftOperand  string
	RightOperand string
	Op           Operator
}

func (ins Instruction) String() string {
	return fmt.Sprintf("%s = %s %s %s", ins.Result, ins.LeftOperand, ins.Op.Symbol(), ins.RightOperand)
}

// Code is an instruction sequence in emission order.
type Code []Instruction

func (code Code) String() string {
	lines := make([]string, len(code))
	for i, ins := range code {
		lines[i] = ins.String()
	}
	return strings.Join(lines, "\n")
}
