// Package expr tokenizes and evaluates arithmetic expressions over float64
// with the binary operators + - * / % and parentheses.
//
// The default algorithm converts infix tokens to postfix with the
// shunting-yard method and reduces them on a stack:
//
//	v, err := expr.ShuntingYard.Eval("(2+3)*4") // 20
//
// EvaluateDescent is an equivalent recursive-descent parser; both run
// CheckShape first and agree on every input. Results are always finite.
// Failures are *Error values whose Kind can be matched with errors.Is
// against ErrInvalidCharacter, ErrInvalidNumber, ErrInvalidExpression and
// ErrDivisionByZero.
package expr
