package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as currency with thousands separators and
// no cents, the resolution plan tables are read at.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	s := amount.StringFixed(0)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercentage formats a fractional rate (0.045) as a percentage ("4.50%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
