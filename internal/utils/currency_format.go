package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision formats an amount with exactly precision decimal places.
// Example: 12.3456 with precision 2 returns "12.35", 1854.5 returns "1854.50".
func FormatWithPrecision(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}

// FormatIndianGrouping formats an amount with two decimal places and the
// Indian digit grouping, where after the rightmost 3 digits the rest are
// grouped in pairs (1,23,45,678.90).
func FormatIndianGrouping(amount decimal.Decimal) string {
	return formatGrouped(amount, applyIndianGrouping)
}

// FormatINR formats an amount in rupee notation: ₹1,23,45,678.90.
func FormatINR(amount decimal.Decimal) string {
	s := FormatIndianGrouping(amount)
	if strings.HasPrefix(s, "-") {
		return "-₹" + s[1:]
	}
	return "₹" + s
}

// FormatUSD formats an amount in dollar notation with thousands grouping: $12,345.67.
func FormatUSD(amount decimal.Decimal) string {
	s := formatGrouped(amount, applyThousandsGrouping)
	if strings.HasPrefix(s, "-") {
		return "-$" + s[1:]
	}
	return "$" + s
}

func formatGrouped(amount decimal.Decimal, group func(string) string) string {
	raw := amount.Abs().StringFixed(2)
	intPart, decPart, _ := strings.Cut(raw, ".")

	result := group(intPart) + "." + decPart
	if amount.Round(2).IsNegative() {
		result = "-" + result
	}
	return result
}

// applyIndianGrouping groups the last 3 digits together, then every 2.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}
	return result
}

func applyThousandsGrouping(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
