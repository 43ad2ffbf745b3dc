package ranker

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// digits keeps only the ASCII digits of s.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsFree reports whether cost textually denotes zero cost: "Free" in any
// case, or an amount whose digits are all zero ("₹0", "$0.00").
func IsFree(cost string) bool {
	trimmed := strings.TrimSpace(cost)
	if strings.EqualFold(trimmed, "free") {
		return true
	}
	d := digits(trimmed)
	return d != "" && strings.Trim(d, "0") == ""
}

// CostAmount extracts the numeric amount from cost by dropping every
// non-digit character. Free costs and text without digits are 0; amounts
// too large for int64 saturate so they still sort after every paid cost.
// "₹4,999" is 4999; separators and decimal points are dropped alike.
func CostAmount(cost string) int64 {
	if IsFree(cost) {
		return 0
	}
	n, err := strconv.ParseInt(digits(cost), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt64
	}
	if err != nil {
		return 0
	}
	return n
}

const hoursPerWeek = 40

// DurationWeeks normalizes a free-text duration to weeks. Hours divide by 40,
// days by 7, months multiply by 4; any other unit is taken as weeks.
// Text without digits is 0; overflowing numbers are +Inf.
func DurationWeeks(duration string) float64 {
	n, err := strconv.ParseFloat(digits(duration), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	lower := strings.ToLower(duration)
	switch {
	case strings.Contains(lower, "hour"):
		return n / hoursPerWeek
	case strings.Contains(lower, "day"):
		return n / 7
	case strings.Contains(lower, "month"):
		return n * 4
	default:
		return n
	}
}
