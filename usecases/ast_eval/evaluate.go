package ast_eval

import (
	"github.com/cockroachdb/errors"

	"github.com/exprc/exprc/models"
	"github.com/exprc/exprc/models/ast"
)

// Evaluator walks an expression tree in postorder, computing the numeric
// result bottom-up and emitting one three-address instruction per operation
// node. Children are evaluated left before right, so a child's instructions
// always precede the instruction that consumes its result.
//
// An Evaluator accumulates code across calls; use a fresh one per expression.
// It is not safe for concurrent use.
type Evaluator struct {
	code ast.Code
}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Code returns the instructions emitted so far, in emission order.
func (e *Evaluator) Code() ast.Code {
	return e.code
}

// Evaluate computes the value of a well-formed expression tree. On any
// failure it returns 0 along with the error, so a caller that ignores the
// error still gets a deterministic number; the emitted code is then invalid
// and must be discarded.
func (e *Evaluator) Evaluate(node *ast.Node) (int64, error) {
	if node == nil {
		return 0, errors.Wrap(models.ErrInvalidAST, "nil node")
	}

	if node.Op == ast.OP_LITERAL {
		return node.Value, nil
	}

	if !node.Op.IsArithmetic() {
		return 0, errors.Wrapf(models.ErrUnknownOperator, "%s", node.Op.DebugString())
	}
	if node.Left == nil || node.Right == nil {
		return 0, errors.Wrapf(models.ErrInvalidAST,
			"operation node %s is missing a child", node.DebugString())
	}

	leftOperand, err := e.Evaluate(node.Left)
	if err != nil {
		return 0, err
	}
	rightOperand, err := e.Evaluate(node.Right)
	if err != nil {
		return 0, err
	}

	result, err := arithmeticEval(node.Op, leftOperand, rightOperand)
	if err != nil {
		return 0, err
	}

	e.code = append(e.code, ast.Instruction{
		Result:       node.Result,
		LeftOperand:  node.Left.Result,
		RightOperand: node.Right.Result,
		Op:           node.Op,
	})
	return result, nil
}

func arithmeticEval(op ast.Operator, l, r int64) (int64, error) {
	switch op {
	case ast.OP_ADD:
		return l + r, nil
	case ast.OP_SUBTRACT:
		return l - r, nil
	case ast.OP_MULTIPLY:
		return l * r, nil
	case ast.OP_DIVIDE:
		if r == 0 {
			return 0, models.DivisionByZeroError
		}
		// Truncating integer division.
		return l / r, nil
	default:
		return 0, errors.Wrapf(models.ErrUnknownOperator, "%s", op.DebugString())
	}
}
