package expr

// CheckShape rejects token sequences that are not an infix expression with
// InvalidExpression. Operands and operators must alternate, starting and
// ending with an operand; "(" may only open an operand and ")" may only close
// one.
//
// Two parenthesis slips are accepted: a "(" still open at the end, and a ")"
// with no open "(", which groups everything before it. Both evaluators
// give the same result on every sequence that passes.
func CheckShape(tokens []Token) error {
	wantOperand := true
	depth := 0

	for _, tok := range tokens {
		switch tok.Kind {
		case Number:
			if !wantOperand {
				return &Error{Kind: InvalidExpression}
			}
			wantOperand = false
		case LeftParen:
			if !wantOperand {
				return &Error{Kind: InvalidExpression}
			}
			depth++
		case Operator:
			if wantOperand {
				return &Error{Kind: InvalidExpression}
			}
			wantOperand = true
		case RightParen:
			if wantOperand {
				return &Error{Kind: InvalidExpression}
			}
			if depth > 0 {
				depth--
			}
		default:
			return &Error{Kind: InvalidExpression}
		}
	}

	if wantOperand {
		return &Error{Kind: InvalidExpression}
	}
	return nil
}
