package expr

import "fmt"

// Strategy names an evaluation algorithm. Both produce identical results for
// well-formed input.
type Strategy string

const (
	ShuntingYard Strategy = "shunting-yard"
	Descent      Strategy = "descent"
)

// ParseStrategy maps a configuration value onto a Strategy. The empty string
// selects ShuntingYard.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", ShuntingYard:
		return ShuntingYard, nil
	case Descent:
		return Descent, nil
	}
	return "", fmt.Errorf("unknown evaluator strategy %q", s)
}

// Evaluate runs tokens through the selected algorithm.
func (s Strategy) Evaluate(tokens []Token) (float64, error) {
	if s == Descent {
		return EvaluateDescent(tokens)
	}
	return Evaluate(tokens)
}

// Eval tokenizes text and evaluates it.
func (s Strategy) Eval(text string) (float64, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return 0, err
	}
	return s.Evaluate(tokens)
}
