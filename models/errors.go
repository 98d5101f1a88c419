package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")
)

// Lexing related errors
var (
	ErrUnknownCharacter     = errors.Wrap(BadParameterError, "unknown character in expression")
	ErrUnexpectedEndOfInput = errors.Wrap(BadParameterError, "unexpected end of input")
)

// Parsing related errors
var (
	// ErrUnexpectedToken is returned when a primary expression starts with
	// something that is neither a number nor an opening parenthesis.
	ErrUnexpectedToken = errors.Wrap(BadParameterError, "number or '(' expected")

	ErrUnterminatedGroup = errors.Wrap(BadParameterError, "missing closing parenthesis")
	ErrTrailingTokens    = errors.Wrap(BadParameterError, "unexpected tokens after expression")
)

// Evaluation related errors
var (
	ErrInvalidAST       = errors.New("invalid AST")
	ErrUnknownOperator  = errors.Wrap(ErrInvalidAST, "unknown operator")
	DivisionByZeroError = errors.Wrap(BadParameterError, "division by zero")
)
