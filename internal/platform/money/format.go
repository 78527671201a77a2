package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Grouping selects how integer digits are separated.
type Grouping string

const (
	// GroupingIndian groups the last three digits, then pairs: 12,34,568.
	GroupingIndian Grouping = "indian"
	// GroupingInternational groups in threes: 1,234,568.
	GroupingInternational Grouping = "international"
)

func (g Grouping) Valid() bool {
	return g == GroupingIndian || g == GroupingInternational
}

// FormatAmount rounds d to whole units and inserts thousands separators.
// Example: 1234567.89 -> "12,34,568" with GroupingIndian.
func FormatAmount(d decimal.Decimal, g Grouping) string {
	rounded := d.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + group(rounded.StringFixed(0), g)
}

func group(digits string, g Grouping) string {
	if len(digits) <= 3 {
		return digits
	}
	size := 3
	if g == GroupingIndian {
		size = 2
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	parts := []string{tail}
	for len(head) > size {
		parts = append(parts, head[len(head)-size:])
		head = head[:len(head)-size]
	}
	parts = append(parts, head)

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}
