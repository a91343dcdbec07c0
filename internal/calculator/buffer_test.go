package calculator

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc-engine/internal/expr"
)

// feed applies labels to b, committing with the shunting-yard evaluator.
func feed(t *testing.T, b *Buffer, labels ...string) {
	t.Helper()
	for _, l := range labels {
		k, err := ParseKey(l)
		require.NoError(t, err)
		switch k.Kind {
		case KeyDigit:
			b.Digit(k.Char)
		case KeyPoint:
			b.Point()
		case KeyOperator:
			b.Operator(k.Char)
		case KeyClear:
			b.Clear()
		case KeyClearEntry:
			b.ClearEntry()
		case KeyDelete:
			b.Delete()
		case KeyEquals:
			_, _, _, _ = b.Commit(expr.ShuntingYard.Eval)
		}
	}
}

func TestBufferEmptyDisplaysZero(t *testing.T) {
	var b Buffer
	assert.Equal(t, "", b.Text())
	assert.Equal(t, "0", b.Display())
}

func TestBufferOperatorRules(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"operator on empty ignored", []string{"+"}, ""},
		{"second operator ignored", []string{"5", "+", "+"}, "5+"},
		{"different operator ignored", []string{"5", "*", "-"}, "5*"},
		{"operator after digit", []string{"5", "+", "3"}, "5+3"},
		{"every operator", []string{"1", "+", "2", "-", "3", "*", "4", "/", "5", "%", "6"}, "1+2-3*4/5%6"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Buffer
			feed(t, &b, tc.labels...)
			assert.Equal(t, tc.want, b.Text())
		})
	}
}

func TestBufferPointRules(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"empty starts with zero", []string{"."}, "0."},
		{"second point ignored", []string{"5", ".", "."}, "5."},
		{"point after digits", []string{"1", ".", "5"}, "1.5"},
		{"point in later numeral", []string{"1", ".", "5", "+", "2", "."}, "1.5+2."},
		{"point after operator starts with zero", []string{"1", ".", "5", "+", "."}, "1.5+0."},
		{"point ignored after decimals", []string{"1", ".", "5", "."}, "1.5"},
		{"point allowed again after delete", []string{"1", ".", "DEL", "."}, "1."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Buffer
			feed(t, &b, tc.labels...)
			assert.Equal(t, tc.want, b.Text())
		})
	}
}

func TestBufferCommit(t *testing.T) {
	var b Buffer
	feed(t, &b, "5", "+", "3")

	expression, result, ok, err := b.Commit(expr.ShuntingYard.Eval)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "5+3", expression)
	assert.Equal(t, 8.0, result)
	assert.Equal(t, "8", b.Text())
	assert.Equal(t, "8", b.Display())

	v, cached := b.Result()
	assert.True(t, cached)
	assert.Equal(t, 8.0, v)
}

func TestBufferCommitEmptyIsNoop(t *testing.T) {
	var b Buffer
	_, _, ok, err := b.Commit(expr.ShuntingYard.Eval)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, "0", b.Display())
}

func TestBufferCommitFailureLeavesTextUntouched(t *testing.T) {
	var b Buffer
	feed(t, &b, "5", "/", "0")

	_, _, ok, err := b.Commit(expr.ShuntingYard.Eval)
	assert.True(t, ok)
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)
	assert.Equal(t, "5/0", b.Text())
	assert.Equal(t, "5/0", b.Display())

	_, cached := b.Result()
	assert.False(t, cached)
}

func TestBufferAfterCommit(t *testing.T) {
	tests := []struct {
		name        string
		labels      []string
		wantText    string
		wantDisplay string
		wantCached  bool
	}{
		{"digit starts new expression", []string{"2"}, "2", "2", false},
		{"point starts new expression", []string{"."}, "0.", "0.", false},
		{"operator chains off result", []string{"*", "2"}, "8*2", "8*2", false},
		{"chained commit", []string{"*", "2", "="}, "16", "16", true},
		{"delete edits result text", []string{"DEL"}, "", "0", false},
		{"delete after clear entry drops result", []string{"CE", "DEL"}, "", "0", false},
		{"clear resets everything", []string{"C"}, "", "0", false},
		{"clear entry keeps cached result", []string{"CE"}, "", "8", true},
		{"digit after clear entry", []string{"CE", "4"}, "4", "4", false},
		{"point after clear entry", []string{"CE", "."}, "0.", "0.", false},
		{"operator after clear entry", []string{"CE", "+"}, "", "8", true},
		{"commit after clear entry", []string{"CE", "="}, "", "8", true},
		{"commit again", []string{"="}, "8", "8", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Buffer
			feed(t, &b, "5", "+", "3", "=")
			feed(t, &b, tc.labels...)

			assert.Equal(t, tc.wantText, b.Text())
			assert.Equal(t, tc.wantDisplay, b.Display())
			_, cached := b.Result()
			assert.Equal(t, tc.wantCached, cached)
		})
	}
}

func TestBufferFormatsFractionalResult(t *testing.T) {
	var b Buffer
	feed(t, &b, "1", "/", "3", "=")
	assert.Equal(t, "0.3333333333", b.Text())

	feed(t, &b, "3", "-", "5", "=")
	assert.Equal(t, "-2", b.Display())
}

func TestBufferDeleteUntilEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	labels := []string{"0", "1", "7", "9", ".", "+", "-", "*", "/", "%", "=", "DEL", "CE"}

	for i := 0; i < 200; i++ {
		var b Buffer
		for j := 0; j < 1+rng.Intn(20); j++ {
			feed(t, &b, labels[rng.Intn(len(labels))])
		}

		for n := len(b.Text()) + 1; n > 0; n-- {
			feed(t, &b, "DEL")
		}
		assert.Equal(t, "", b.Text())
		assert.Equal(t, "0", b.Display())
	}
}

// No numeral typed from digits, points, operators and deletes ever holds two
// decimal points.
func TestBufferSinglePointPerNumeral(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	labels := []string{"0", "3", "5", ".", ".", ".", "+", "*", "DEL"}

	for i := 0; i < 500; i++ {
		var b Buffer
		for j := 0; j < 1+rng.Intn(30); j++ {
			feed(t, &b, labels[rng.Intn(len(labels))])

			for _, numeral := range strings.FieldsFunc(b.Text(), func(r rune) bool {
				return r < 0x80 && expr.IsOperator(byte(r))
			}) {
				require.LessOrEqual(t, strings.Count(numeral, "."), 1, b.Text())
			}
			require.False(t, strings.Contains(b.Text(), "++") || strings.Contains(b.Text(), "+*") ||
				strings.Contains(b.Text(), "*+") || strings.Contains(b.Text(), "**"), b.Text())
		}
	}
}
