package expr

import "math"

// Precedence ranks the binary operators. Higher binds tighter; anything that
// is not an operator ranks 0.
func Precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/', '%':
		return 2
	}
	return 0
}

// ToPostfix reorders infix tokens into postfix using the shunting-yard
// method. Operators of equal precedence are left-associative.
//
// Parentheses are matched leniently: a ")" with no open "(" closes nothing
// beyond flushing the operators seen so far, and a "(" still open at the end
// is dropped.
func ToPostfix(tokens []Token) []Token {
	output := make([]Token, 0, len(tokens))
	var stack []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case Number:
			output = append(output, tok)
		case Operator:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != Operator || Precedence(top.Op) < Precedence(tok.Op) {
					break
				}
				output = append(output, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case LeftParen:
			stack = append(stack, tok)
		case RightParen:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LeftParen {
					break
				}
				output = append(output, top)
			}
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Kind == Operator {
			output = append(output, stack[i])
		}
	}
	return output
}

// EvalPostfix reduces a postfix sequence on a value stack.
func EvalPostfix(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, tok := range postfix {
		switch tok.Kind {
		case Number:
			stack = append(stack, tok.Value)
		case Operator:
			if len(stack) < 2 {
				return 0, &Error{Kind: InvalidExpression}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := Apply(tok.Op, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		default:
			return 0, &Error{Kind: InvalidExpression}
		}
	}

	if len(stack) != 1 {
		return 0, &Error{Kind: InvalidExpression}
	}
	return stack[0], nil
}

// Apply computes a <op> b. "%" is the floating-point remainder, whose sign
// follows a. A result that overflows to an infinity is reported as
// InvalidNumber, so every successful result is finite.
func Apply(op byte, a, b float64) (float64, error) {
	var v float64
	switch op {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		if b == 0 {
			return 0, &Error{Kind: DivisionByZero}
		}
		v = a / b
	case '%':
		if b == 0 {
			return 0, &Error{Kind: DivisionByZero}
		}
		v = math.Mod(a, b)
	default:
		return 0, &Error{Kind: InvalidExpression}
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &Error{Kind: InvalidNumber}
	}
	return v, nil
}

// Evaluate computes the value of an infix token sequence via ToPostfix and
// EvalPostfix. The sequence is checked with CheckShape first.
func Evaluate(tokens []Token) (float64, error) {
	if err := CheckShape(tokens); err != nil {
		return 0, err
	}
	return EvalPostfix(ToPostfix(tokens))
}
