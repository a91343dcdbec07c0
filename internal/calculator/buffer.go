package calculator

import (
	"strings"

	"calc-engine/internal/expr"
)

// Buffer holds the expression being typed. The text never ends in two
// operators and no numeral in it carries more than one decimal point.
//
// The zero value is an empty buffer ready for use.
type Buffer struct {
	text          string
	result        float64
	hasResult     bool
	justEvaluated bool
}

// Text returns the current expression text.
func (b *Buffer) Text() string { return b.text }

// Result returns the value cached by the last successful Commit, if no edit
// has happened since.
func (b *Buffer) Result() (float64, bool) { return b.result, b.hasResult }

// Display is what the display shows: the cached result when present,
// otherwise the text, or "0" for an empty buffer.
func (b *Buffer) Display() string {
	if b.hasResult {
		return expr.FormatNumber(b.result)
	}
	if b.text == "" {
		return "0"
	}
	return b.text
}

// Digit appends d, or starts a new expression right after a commit.
func (b *Buffer) Digit(d byte) {
	if b.justEvaluated {
		b.text = ""
	}
	b.text += string(d)
	b.edited()
}

// Point starts or extends the trailing numeral with a decimal point. A
// numeral that already has one is left alone. With no numeral to extend the
// point is written as "0.".
func (b *Buffer) Point() {
	if b.justEvaluated {
		b.text = ""
	}

	numeral := b.trailingNumeral()
	switch {
	case strings.Contains(numeral, "."):
		return
	case numeral == "":
		b.text += "0."
	default:
		b.text += "."
	}
	b.edited()
}

// Operator appends op unless the buffer is empty or already ends in an
// operator. After a commit this chains off the result.
func (b *Buffer) Operator(op byte) {
	if b.text == "" || b.endsWithOperator() {
		return
	}
	b.text += string(op)
	b.edited()
}

// Delete removes the last character, if any. It always drops a cached
// result, so repeated deletes end on a display of "0".
func (b *Buffer) Delete() {
	if b.text != "" {
		b.text = b.text[:len(b.text)-1]
	}
	b.edited()
}

// Clear resets the buffer completely.
func (b *Buffer) Clear() {
	*b = Buffer{}
}

// ClearEntry empties the text and nothing else. A cached result survives
// until the next edit.
func (b *Buffer) ClearEntry() {
	b.text = ""
}

// Commit evaluates the text with eval. On success the text is replaced by
// the formatted result and the previous text is returned. On failure the
// buffer is untouched. An empty buffer is not evaluated and ok is false.
func (b *Buffer) Commit(eval func(string) (float64, error)) (expression string, result float64, ok bool, err error) {
	if b.text == "" {
		return "", 0, false, nil
	}

	v, err := eval(b.text)
	if err != nil {
		return b.text, 0, true, err
	}

	expression = b.text
	b.text = expr.FormatNumber(v)
	b.result = v
	b.hasResult = true
	b.justEvaluated = true
	return expression, v, true, nil
}

func (b *Buffer) edited() {
	b.justEvaluated = false
	b.hasResult = false
	b.result = 0
}

func (b *Buffer) endsWithOperator() bool {
	return b.text != "" && expr.IsOperator(b.text[len(b.text)-1])
}

// trailingNumeral is the text after the last operator.
func (b *Buffer) trailingNumeral() string {
	i := strings.LastIndexAny(b.text, "+-*/%")
	return b.text[i+1:]
}
