package expr

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Token
	}{
		{
			name: "precedence sample",
			text: "3+4*2",
			want: []Token{NumberToken(3), OpToken('+'), NumberToken(4), OpToken('*'), NumberToken(2)},
		},
		{
			name: "decimals and parens",
			text: "(12.5%.5)",
			want: []Token{{Kind: LeftParen}, NumberToken(12.5), OpToken('%'), NumberToken(0.5), {Kind: RightParen}},
		},
		{
			name: "whitespace skipped inside numeral",
			text: " 1 2 - 3 ",
			want: []Token{NumberToken(12), OpToken('-'), NumberToken(3)},
		},
		{
			name: "trailing point",
			text: "7.",
			want: []Token{NumberToken(7)},
		},
		{
			name: "every operator",
			text: "1+2-3*4/5%6",
			want: []Token{
				NumberToken(1), OpToken('+'), NumberToken(2), OpToken('-'), NumberToken(3),
				OpToken('*'), NumberToken(4), OpToken('/'), NumberToken(5), OpToken('%'), NumberToken(6),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Tokenize(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	got, err := Tokenize("")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = Tokenize("   ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	for _, text := range []string{"2^3", "1+x", "4e5", "3,5", "π"} {
		t.Run(text, func(t *testing.T) {
			_, err := Tokenize(text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCharacter), "got %v", err)

			var e *Error
			require.True(t, errors.As(err, &e))
			assert.NotZero(t, e.Char)
			assert.Contains(t, e.Error(), "invalid character")
		})
	}
}

func TestTokenizeInvalidCharacterReportsRune(t *testing.T) {
	_, err := Tokenize("12^3")

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, InvalidCharacter, e.Kind)
	assert.Equal(t, '^', e.Char)
}

func TestTokenizeInvalidNumber(t *testing.T) {
	tests := []string{
		"1.2.3",
		".",
		"1..+2",
		"(1.2.3)",
		"4+.)",
		strings.Repeat("9", 400),
	}

	for _, text := range tests {
		t.Run(text[:min(len(text), 10)], func(t *testing.T) {
			_, err := Tokenize(text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidNumber)
			assert.Equal(t, InvalidNumber, KindOf(err))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, DivisionByZero, KindOf(&Error{Kind: DivisionByZero}))
	assert.Equal(t, Kind(0), KindOf(errors.New("other")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid_character", InvalidCharacter.String())
	assert.Equal(t, "invalid_number", InvalidNumber.String())
	assert.Equal(t, "invalid_expression", InvalidExpression.String())
	assert.Equal(t, "division_by_zero", DivisionByZero.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
