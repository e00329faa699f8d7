package transfer

import (
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// MaxAmount bounds every user supplied fee, wage, bonus or demand.
const MaxAmount int64 = 1_000_000_000_000_000

// ValidAmount reports 0 <= v <= MaxAmount.
func ValidAmount(v int64) bool {
	return v >= 0 && v <= MaxAmount
}

// cmpScaled compares a*pa with b*pb using 128-bit products. Negative
// operands count as zero.
func cmpScaled(a, pa, b, pb int64) int {
	ahi, alo := bits.Mul64(uint64(max(a, 0)), uint64(max(pa, 0)))
	bhi, blo := bits.Mul64(uint64(max(b, 0)), uint64(max(pb, 0)))
	switch {
	case ahi < bhi || (ahi == bhi && alo < blo):
		return -1
	case ahi > bhi || alo > blo:
		return 1
	default:
		return 0
	}
}

// addCapped saturates at math.MaxInt64 instead of wrapping.
func addCapped(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// FormatMoney abbreviates an amount for display: 1500000 -> "1.5M",
// 250000 -> "250K". It must never be used for comparisons.
func FormatMoney(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	switch {
	case v >= 1_000_000_000:
		return sign + trimDecimal(float64(v)/1e9) + "B"
	case v >= 1_000_000:
		return sign + trimDecimal(float64(v)/1e6) + "M"
	case v >= 1_000:
		return sign + strconv.FormatInt(v/1000, 10) + "K"
	default:
		return sign + strconv.FormatInt(v, 10)
	}
}

func trimDecimal(f float64) string {
	s := strconv.FormatFloat(f, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
