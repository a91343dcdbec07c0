package expr

// EvaluateDescent computes the same result as Evaluate with a
// recursive-descent parser over the grammar
//
//	sum    = term { ("+" | "-") term }
//	term   = factor { ("*" | "/" | "%") factor }
//	factor = number | "(" sum [ ")" ]
//
// The sequence is checked with CheckShape first. A "(" left open at end of
// input is closed implicitly. A ")" with no open "(" groups everything before
// it, e.g. "1+2)*3" is 9, as with Evaluate.
func EvaluateDescent(tokens []Token) (float64, error) {
	if err := CheckShape(tokens); err != nil {
		return 0, err
	}
	p := &parser{tokens: tokens}

	v, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	for p.at(RightParen) {
		p.pos++
		if v, err = p.termFrom(v); err != nil {
			return 0, err
		}
		if v, err = p.sumFrom(v); err != nil {
			return 0, err
		}
	}

	if p.pos != len(p.tokens) {
		return 0, &Error{Kind: InvalidExpression}
	}
	return v, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) at(kind TokenKind) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].Kind == kind
}

func (p *parser) atOp(ops ...byte) (byte, bool) {
	if !p.at(Operator) {
		return 0, false
	}
	op := p.tokens[p.pos].Op
	for _, o := range ops {
		if o == op {
			return op, true
		}
	}
	return 0, false
}

func (p *parser) parseSum() (float64, error) {
	v, err := p.parseFactor()
	if err != nil {
		return 0, err
	}
	if v, err = p.termFrom(v); err != nil {
		return 0, err
	}
	return p.sumFrom(v)
}

func (p *parser) sumFrom(left float64) (float64, error) {
	for {
		op, ok := p.atOp('+', '-')
		if !ok {
			return left, nil
		}
		p.pos++

		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if rhs, err = p.termFrom(rhs); err != nil {
			return 0, err
		}
		if left, err = Apply(op, left, rhs); err != nil {
			return 0, err
		}
	}
}

func (p *parser) termFrom(left float64) (float64, error) {
	for {
		op, ok := p.atOp('*', '/', '%')
		if !ok {
			return left, nil
		}
		p.pos++

		rhs, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		if left, err = Apply(op, left, rhs); err != nil {
			return 0, err
		}
	}
}

func (p *parser) parseFactor() (float64, error) {
	if p.pos >= len(p.tokens) {
		return 0, &Error{Kind: InvalidExpression}
	}

	tok := p.tokens[p.pos]
	switch tok.Kind {
	case Number:
		p.pos++
		return tok.Value, nil
	case LeftParen:
		p.pos++
		v, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		if p.at(RightParen) {
			p.pos++
		}
		return v, nil
	}
	return 0, &Error{Kind: InvalidExpression}
}
