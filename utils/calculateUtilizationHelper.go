package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary/percentage string the way the console
// receives it from the upstream API. Accepts thousand separators and a
// currency prefix; anything unparseable counts as zero so a bad record can
// never push NaN into a displayed total.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	// Strip everything except digits and '.'.
	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" || clean == "." {
		return decimal.Zero
	}
	if neg {
		clean = "-" + clean
	}
	val, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return val
}

// CalculateUtilizationPercent returns utilized/allocated*100.
// Zero (or unparseable) allocated returns exactly 0, never a division error.
func CalculateUtilizationPercent(allocated string, utilized string) decimal.Decimal {
	allocatedAmount := ParseAmount(allocated)
	if allocatedAmount.IsZero() {
		return decimal.Zero
	}
	utilizedAmount := ParseAmount(utilized)
	decimalOneHundred := decimal.NewFromFloat(100)
	return utilizedAmount.Mul(decimalOneHundred).DivRound(allocatedAmount, 4)
}

// SumAmounts totals a list of amount strings; unparseable entries count as
// zero.
func SumAmounts(raws []string) decimal.Decimal {
	total := decimal.Zero
	for _, raw := range raws {
		total = total.Add(ParseAmount(raw))
	}
	return total
}
