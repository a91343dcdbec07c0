package expr

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// TokenKind tags the variant held by a Token.
type TokenKind int

const (
	Number TokenKind = iota + 1
	Operator
	LeftParen
	RightParen
)

// Token is one lexical unit of an expression. Value is set for Number,
// Op for Operator.
type Token struct {
	Kind  TokenKind
	Value float64
	Op    byte
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Operator:
		return string(t.Op)
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	}
	return "?"
}

// NumberToken and OpToken are shorthands used by callers building token
// sequences by hand.
func NumberToken(v float64) Token { return Token{Kind: Number, Value: v} }

func OpToken(op byte) Token { return Token{Kind: Operator, Op: op} }

// IsOperator reports whether c is one of the binary operator characters.
func IsOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%':
		return true
	}
	return false
}

func isNumeral(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

// Tokenize splits text into tokens, scanning left to right and folding each
// maximal run of digits and points into a single Number. Empty input yields
// an empty, non-nil sequence.
func Tokenize(text string) ([]Token, error) {
	tokens := make([]Token, 0, len(text))

	var numeral strings.Builder
	flush := func() error {
		if numeral.Len() == 0 {
			return nil
		}
		v, err := strconv.ParseFloat(numeral.String(), 64)
		numeral.Reset()
		if err != nil || math.IsInf(v, 0) {
			return &Error{Kind: InvalidNumber}
		}
		tokens = append(tokens, NumberToken(v))
		return nil
	}

	for _, r := range text {
		switch {
		case isNumeral(r):
			numeral.WriteRune(r)
		case r < 0x80 && IsOperator(byte(r)):
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, OpToken(byte(r)))
		case r == '(':
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: LeftParen})
		case r == ')':
			if err := flush(); err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Kind: RightParen})
		case unicode.IsSpace(r):
			// Skipped without ending the numeral: "1 2" reads as 12.
		default:
			return nil, &Error{Kind: InvalidCharacter, Char: r}
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}
	return tokens, nil
}
