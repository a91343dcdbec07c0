package expr

import (
	"errors"
	"fmt"
)

// Kind classifies an evaluation failure. InvalidNumber covers both a numeral
// that does not parse to a finite value and an operation whose result
// overflows.
type Kind int

const (
	InvalidCharacter Kind = iota + 1
	InvalidNumber
	InvalidExpression
	DivisionByZero
)

func (k Kind) String() string {
	switch k {
	case InvalidCharacter:
		return "invalid_character"
	case InvalidNumber:
		return "invalid_number"
	case InvalidExpression:
		return "invalid_expression"
	case DivisionByZero:
		return "division_by_zero"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by Tokenize and Evaluate. Char is only set for
// InvalidCharacter.
type Error struct {
	Kind Kind
	Char rune
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCharacter:
		return fmt.Sprintf("invalid character: %q", e.Char)
	case InvalidNumber:
		return "invalid number"
	case InvalidExpression:
		return "invalid expression"
	case DivisionByZero:
		return "division by zero"
	}
	return e.Kind.String()
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrDivisionByZero)
// works regardless of Char.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for kind-level comparison with errors.Is.
var (
	ErrInvalidCharacter  = &Error{Kind: InvalidCharacter}
	ErrInvalidNumber     = &Error{Kind: InvalidNumber}
	ErrInvalidExpression = &Error{Kind: InvalidExpression}
	ErrDivisionByZero    = &Error{Kind: DivisionByZero}
)

// KindOf reports the Kind carried by err, or 0 if err is not an engine error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
