package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exprc/exprc/models"
)

func TestLexer_scans_all_token_kinds(t *testing.T) {
	l, err := New("12 + 3 - 4 * 5 / ( 6 )")
	require.NoError(t, err)

	expected := []models.TokenKind{
		models.TOKEN_NUMBER,
		models.TOKEN_PLUS,
		models.TOKEN_NUMBER,
		models.TOKEN_MINUS,
		models.TOKEN_NUMBER,
		models.TOKEN_STAR,
		models.TOKEN_NUMBER,
		models.TOKEN_SLASH,
		models.TOKEN_LEFT_PAREN,
		models.TOKEN_NUMBER,
		models.TOKEN_RIGHT_PAREN,
		models.TOKEN_EOF,
	}

	for _, kind := range expected {
		assert.Equal(t, kind, l.Current().Kind)
		require.NoError(t, l.Advance())
	}
}

func TestLexer_number_keeps_textual_form(t *testing.T) {
	l, err := New("9000")
	require.NoError(t, err)

	tok := l.Current()
	assert.Equal(t, models.TOKEN_NUMBER, tok.Kind)
	assert.Equal(t, int64(9000), tok.Value)
	assert.Equal(t, "9000", tok.Text)
}

func TestLexer_advance_is_stable_at_end_of_input(t *testing.T) {
	l, err := New("1")
	require.NoError(t, err)
	require.NoError(t, l.Advance())

	for i := 0; i < 3; i++ {
		assert.Equal(t, models.TOKEN_EOF, l.Current().Kind)
		require.NoError(t, l.Advance())
	}
}

func TestLexer_unknown_character(t *testing.T) {
	_, err := New("1 % 2")
	assert.NoError(t, err)

	l, err := New("% 2")
	assert.Nil(t, l)
	assert.ErrorIs(t, err, models.ErrUnknownCharacter)
}

func TestLexer_expect(t *testing.T) {
	l, err := New("( 1")
	require.NoError(t, err)

	require.NoError(t, l.Expect(models.TOKEN_LEFT_PAREN))
	assert.Equal(t, models.TOKEN_NUMBER, l.Current().Kind)

	err = l.Expect(models.TOKEN_RIGHT_PAREN)
	assert.ErrorIs(t, err, models.ErrUnterminatedGroup)
}
