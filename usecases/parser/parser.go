package parser

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/exprc/exprc/models"
	"github.com/exprc/exprc/models/ast"
)

// Parser builds an expression AST by recursive descent over three precedence
// layers:
//
//	Expression     := Additive
//	Additive       := Multiplicative ( ('+' | '-') Multiplicative )*
//	Multiplicative := Primary ( ('*' | '/') Primary )*
//	Primary        := NUMBER | '(' Expression ')'
//
// Each layer parses one operand at the next-higher precedence, then loops
// while the current token is one of its own operators, folding operands into
// a left-leaning chain. That chain shape is what makes all four operators
// left-associative.
//
// The temporary counter lives on the Parser rather than in a process global,
// so independent parses never leak numbering into each other. A fresh Parser
// always starts at t0; the counter of a given instance is monotonic for its
// whole lifetime and is never reset.
type Parser struct {
	tokens TokenSource
	tmpNo  int
}

// TokenSource is the one-token-lookahead cursor the parser consumes.
// *lexer.Lexer implements it.
type TokenSource interface {
	Current() models.Token
	Advance() error
	Expect(kind models.TokenKind) error
}

func NewParser(tokens TokenSource) *Parser {
	return &Parser{tokens: tokens}
}

// Temporaries are named "t0", "t1", "t2", .... One is allocated per operator,
// at the moment the parser recognizes it, so numbering follows left-to-right
// token order rather than evaluation order.
func (p *Parser) newTemp() string {
	name := fmt.Sprintf("t%d", p.tmpNo)
	p.tmpNo++
	return name
}

// Parse parses a whole source: one expression followed by end of input.
func (p *Parser) Parse() (*ast.Node, error) {
	node, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if p.tokens.Current().Kind != models.TOKEN_EOF {
		return nil, errors.Wrapf(models.ErrTrailingTokens,
			"got %s", p.tokens.Current().Kind.DebugString())
	}
	return node, nil
}

func (p *Parser) Expression() (*ast.Node, error) {
	return p.additiveExpression()
}

func (p *Parser) additiveExpression() (*ast.Node, error) {
	left, err := p.multiplicativeExpression()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := additiveOperator(p.tokens.Current().Kind)
		if !ok {
			return left, nil
		}

		// The temporary is allocated before the right operand is parsed:
		// in "9000 + (6 * 4)" the addition gets t0 and the inner
		// multiplication gets t1, even though t1 is computed first.
		result := p.newTemp()
		if err := p.tokens.Advance(); err != nil {
			return nil, err
		}
		right, err := p.multiplicativeExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewOperation(op, result, left, right)
	}
}

func (p *Parser) multiplicativeExpression() (*ast.Node, error) {
	left, err := p.primaryExpression()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := multiplicativeOperator(p.tokens.Current().Kind)
		if !ok {
			return left, nil
		}

		result := p.newTemp()
		if err := p.tokens.Advance(); err != nil {
			return nil, err
		}
		right, err := p.primaryExpression()
		if err != nil {
			return nil, err
		}
		left = ast.NewOperation(op, result, left, right)
	}
}

func (p *Parser) primaryExpression() (*ast.Node, error) {
	tok := p.tokens.Current()

	switch tok.Kind {
	case models.TOKEN_NUMBER:
		if err := p.tokens.Advance(); err != nil {
			return nil, err
		}
		return ast.NewLiteral(tok.Value, tok.Text), nil

	case models.TOKEN_LEFT_PAREN:
		if err := p.tokens.Advance(); err != nil {
			return nil, err
		}
		node, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if err := p.tokens.Expect(models.TOKEN_RIGHT_PAREN); err != nil {
			return nil, err
		}
		return node, nil

	default:
		return nil, errors.Wrapf(models.ErrUnexpectedToken,
			"got %s", tok.Kind.DebugString())
	}
}

func additiveOperator(kind models.TokenKind) (ast.Operator, bool) {
	switch kind {
	case models.TOKEN_PLUS:
		return ast.OP_ADD, true
	case models.TOKEN_MINUS:
		return ast.OP_SUBTRACT, true
	default:
		return ast.OP_UNKNOWN, false
	}
}

func multiplicativeOperator(kind models.TokenKind) (ast.Operator, bool) {
	switch kind {
	case models.TOKEN_STAR:
		return ast.OP_MULTIPLY, true
	case models.TOKEN_SLASH:
		return ast.OP_DIVIDE, true
	default:
		return ast.OP_UNKNOWN, false
	}
}
