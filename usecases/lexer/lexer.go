package lexer

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/exprc/exprc/models"
)

// Lexer scans an expression source and exposes a one-token lookahead cursor.
// The parser only ever looks at Current and moves forward with Advance or
// Expect. Once the source is exhausted, Current stays TOKEN_EOF and Advance
// keeps succeeding, so the parser never has to special-case the end of input.
type Lexer struct {
	src     string
	pos     int
	current models.Token
}

func New(src string) (*Lexer, error) {
	l := &Lexer{src: src}
	if err := l.Advance(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lexer) Current() models.Token {
	return l.current
}

// Advance discards the current token and loads the next one from the source.
func (l *Lexer) Advance() error {
	tok, err := l.scan()
	if err != nil {
		return err
	}
	l.current = tok
	return nil
}

// Expect asserts that the current token has the given kind and advances
// past it.
func (l *Lexer) Expect(kind models.TokenKind) error {
	if l.current.Kind != kind {
		if kind == models.TOKEN_RIGHT_PAREN {
			return errors.Wrapf(models.ErrUnterminatedGroup,
				"expected %s, got %s", kind.DebugString(), l.current.Kind.DebugString())
		}
		return errors.Wrapf(models.BadParameterError,
			"expected %s, got %s", kind.DebugString(), l.current.Kind.DebugString())
	}
	return l.Advance()
}

func (l *Lexer) scan() (models.Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.src) {
		return models.Token{Kind: models.TOKEN_EOF}, nil
	}

	c := l.src[l.pos]
	switch c {
	case '+':
		l.pos++
		return models.Token{Kind: models.TOKEN_PLUS}, nil
	case '-':
		l.pos++
		return models.Token{Kind: models.TOKEN_MINUS}, nil
	case '*':
		l.pos++
		return models.Token{Kind: models.TOKEN_STAR}, nil
	case '/':
		l.pos++
		return models.Token{Kind: models.TOKEN_SLASH}, nil
	case '(':
		l.pos++
		return models.Token{Kind: models.TOKEN_LEFT_PAREN}, nil
	case ')':
		l.pos++
		return models.Token{Kind: models.TOKEN_RIGHT_PAREN}, nil
	}

	if isDigit(c) {
		return l.scanNumber()
	}

	return models.Token{Kind: models.TOKEN_ILLEGAL},
		errors.Wrapf(models.ErrUnknownCharacter, "%q at offset %d", c, l.pos)
}

func (l *Lexer) scanNumber() (models.Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]

	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return models.Token{Kind: models.TOKEN_ILLEGAL},
			errors.Wrapf(models.BadParameterError, "integer literal %q out of range", text)
	}

	return models.Token{
		Kind:  models.TOKEN_NUMBER,
		Value: value,
		Text:  text,
	}, nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
