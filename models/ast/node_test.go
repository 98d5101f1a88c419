package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountNodes(t *testing.T) {
	// 2 * 3 + 4
	tree := NewOperation(OP_ADD, "t1",
		NewOperation(OP_MULTIPLY, "t0", NewLiteral(2, "2"), NewLiteral(3, "3")),
		NewLiteral(4, "4"))

	assert.Equal(t, 5, CountNodes(tree))
	assert.Equal(t, 0, CountNodes(nil))
}

func TestNewLiteral_keeps_textual_form(t *testing.T) {
	node := NewLiteral(42, "42")

	assert.Equal(t, OP_LITERAL, node.Op)
	assert.Equal(t, "42", node.Result)
	assert.Equal(t, int64(42), node.Value)
	assert.Nil(t, node.Left)
	assert.Nil(t, node.Right)
}

func TestInstruction_String(t *testing.T) {
	ins := Instruction{Result: "t0", LeftOperand: "3", RightOperand: "4", Op: OP_ADD}
	assert.Equal(t, "t0 = 3 + 4", ins.String())
}

func TestCode_String(t *testing.T) {
	code := Code{
		{Result: "t1", LeftOperand: "6", RightOperand: "4", Op: OP_MULTIPLY},
		{Result: "t0", LeftOperand: "9000", RightOperand: "t1", Op: OP_ADD},
	}
	assert.Equal(t, "t1 = 6 * 4\nt0 = 9000 + t1", code.String())
}

func TestOperator_Symbol(t *testing.T) {
	assert.Equal(t, "+", OP_ADD.Symbol())
	assert.Equal(t, "-", OP_SUBTRACT.Symbol())
	assert.Equal(t, "*", OP_MULTIPLY.Symbol())
	assert.Equal(t, "/", OP_DIVIDE.Symbol())
	assert.Equal(t, "?", OP_LITERAL.Symbol())
}
