package models

import "fmt"

type TokenKind int

const (
	TOKEN_EOF TokenKind = iota
	TOKEN_NUMBER
	TOKEN_PLUS
	TOKEN_MINUS
	TOKEN_STAR
	TOKEN_SLASH
	TOKEN_LEFT_PAREN
	TOKEN_RIGHT_PAREN
	TOKEN_ILLEGAL
)

// Token is the unit handed from the lexer to the parser. Value and Text are
// only meaningful for TOKEN_NUMBER: Value is the parsed integer, Text the
// literal exactly as it appeared in the source.
type Token struct {
	Kind  TokenKind
	Value int64
	Text  string
}

func (k TokenKind) DebugString() string {
	switch k {
	case TOKEN_EOF:
		return "EOF"
	case TOKEN_NUMBER:
		return "NUMBER"
	case TOKEN_PLUS:
		return "'+'"
	case TOKEN_MINUS:
		return "'-'"
	case TOKEN_STAR:
		return "'*'"
	case TOKEN_SLASH:
		return "'/'"
	case TOKEN_LEFT_PAREN:
		return "'('"
	case TOKEN_RIGHT_PAREN:
		return "')'"
	case TOKEN_ILLEGAL:
		return "ILLEGAL"
	default:
		return fmt.Sprintf("Invalid token kind: %d", k)
	}
}
