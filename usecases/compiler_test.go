package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exprc/exprc/models"
)

func TestCompilerUsecase_simple_addition(t *testing.T) {
	result, err := CompilerUsecase{}.Compile(context.Background(), "3 + 4")
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.Value)
	assert.Equal(t, "t0 = 3 + 4", result.Code.String())
}

func TestCompilerUsecase_precedence_orders_emission(t *testing.T) {
	result, err := CompilerUsecase{}.Compile(context.Background(), "2 * 3 + 4")
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.Value)
	assert.Equal(t, "t0 = 2 * 3\nt1 = t0 + 4", result.Code.String())
}

func TestCompilerUsecase_parentheses(t *testing.T) {
	result, err := CompilerUsecase{}.Compile(context.Background(), "(1 + 2) * 3")
	require.NoError(t, err)

	assert.Equal(t, int64(9), result.Value)
	assert.Equal(t, "t0 = 1 + 2\nt1 = t0 * 3", result.Code.String())
}

func TestCompilerUsecase_reference_example(t *testing.T) {
	result, err := CompilerUsecase{}.Compile(context.Background(), "9000 + ( 6 * 4 )")
	require.NoError(t, err)

	assert.Equal(t, int64(9024), result.Value)
	assert.Equal(t, "t1 = 6 * 4\nt0 = 9000 + t1", result.Code.String())
}

func TestCompilerUsecase_one_instruction_per_operator(t *testing.T) {
	sources := []string{
		"1",
		"1 + 2",
		"1 + 2 - 3",
		"1 + 2 * 3 - 4 / 5",
		"((1 + 2) * (3 - 4)) / 5",
	}
	for _, source := range sources {
		result, err := CompilerUsecase{}.Compile(context.Background(), source)
		require.NoError(t, err, source)

		operators := strings.Count(source, "+") + strings.Count(source, "-") +
			strings.Count(source, "*") + strings.Count(source, "/")
		assert.Len(t, result.Code, operators, source)
	}
}

func TestCompilerUsecase_temporaries_strictly_increasing(t *testing.T) {
	result, err := CompilerUsecase{}.Compile(context.Background(), "1 * 2 + 3 * 4 - 5")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, ins := range result.Code {
		assert.False(t, seen[ins.Result], "temporary %s assigned twice", ins.Result)
		seen[ins.Result] = true
	}
	for _, name := range []string{"t0", "t1", "t2", "t3"} {
		assert.True(t, seen[name], "missing temporary %s", name)
	}
}

func TestCompilerUsecase_consecutive_compiles_are_independent(t *testing.T) {
	usecase := CompilerUsecase{}

	first, err := usecase.Compile(context.Background(), "1 + 2")
	require.NoError(t, err)
	second, err := usecase.Compile(context.Background(), "1 + 2")
	require.NoError(t, err)

	// Temporary numbering restarts at t0 for every compile.
	assert.Equal(t, first.Code, second.Code)
}

func TestCompilerUsecase_syntax_error_produces_no_code(t *testing.T) {
	result, err := CompilerUsecase{}.Compile(context.Background(), "(1 + 2")

	assert.ErrorIs(t, err, models.ErrUnterminatedGroup)
	assert.ErrorIs(t, err, models.BadParameterError)
	assert.Empty(t, result.Code)
}

func TestCompilerUsecase_division_by_zero(t *testing.T) {
	_, err := CompilerUsecase{}.Compile(context.Background(), "1 / 0")
	assert.ErrorIs(t, err, models.DivisionByZeroError)
}
