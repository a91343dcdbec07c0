package expr

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v for display and history. Integral values below 1e15
// print without a decimal point; everything else is printed with ten decimal
// places and trailing zeros removed.
func FormatNumber(v float64) string {
	if _, frac := math.Modf(v); frac == 0 && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}

	s := strconv.FormatFloat(v, 'f', 10, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
