package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprc/exprc/models/ast"
	"github.com/exprc/exprc/usecases"
)

func TestAdaptCompileResultDto(t *testing.T) {
	result := usecases.CompileResult{
		Value: 9024,
		Code: ast.Code{
			{Result: "t1", LeftOperand: "6", RightOperand: "4", Op: ast.OP_MULTIPLY},
			{Result: "t0", LeftOperand: "9000", RightOperand: "t1", Op: ast.OP_ADD},
		},
	}

	adapted := AdaptCompileResultDto(result)

	assert.Equal(t, int64(9024), adapted.Value)
	assert.Equal(t, []string{"t1 = 6 * 4", "t0 = 9000 + t1"}, adapted.Code)
}

func TestAdaptCompileResultDto_empty_code(t *testing.T) {
	adapted := AdaptCompileResultDto(usecases.CompileResult{Value: 7})

	assert.Equal(t, int64(7), adapted.Value)
	assert.Empty(t, adapted.Code)
}
