package usecases

import (
	"context"

	"github.com/exprc/exprc/models/ast"
	"github.com/exprc/exprc/usecases/ast_eval"
	"github.com/exprc/exprc/usecases/lexer"
	"github.com/exprc/exprc/usecases/parser"
	"github.com/exprc/exprc/utils"
)

type CompileResult struct {
	Value int64
	Code  ast.Code
}

// CompilerUsecase runs the whole pipeline on one expression source: lex,
// parse, then evaluate while emitting three-address code. Each call uses a
// fresh lexer, parser and evaluator, so calls are independent and temporary
// numbering always starts at t0.
type CompilerUsecase struct{}

func (usecase CompilerUsecase) Compile(ctx context.Context, source string) (CompileResult, error) {
	logger := utils.LoggerFromContext(ctx)

	tokens, err := lexer.New(source)
	if err != nil {
		return CompileResult{}, err
	}

	tree, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return CompileResult{}, err
	}

	evaluator := ast_eval.NewEvaluator()
	value, err := evaluator.Evaluate(tree)
	if err != nil {
		return CompileResult{}, err
	}

	logger.DebugContext(ctx, "compiled expression",
		"source", source,
		"value", value,
		"instructions", len(evaluator.Code()),
		"nodes", ast.CountNodes(tree),
	)

	return CompileResult{
		Value: value,
		Code:  evaluator.Code(),
	}, nil
}
