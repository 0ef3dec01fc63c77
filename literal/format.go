package literal

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders a float64 the way ECMAScript's ToString(Number)
// does: both zeros print as "0", magnitudes in [1e-6, 1e21) print in plain
// decimal with the shortest round-tripping digits (integers without a
// decimal point), and everything else in exponent form such as 1e-7 or
// 1e+21.
func formatNumber(f float64) string {
	switch abs := math.Abs(f); {
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case abs >= 1e-6 && abs < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Replace(strconv.FormatFloat(f, 'g', -1, 64), "e-0", "e-", 1)
}

func isNegZero(f float64) bool {
	return f == 0 && (1/f) < 0
}
