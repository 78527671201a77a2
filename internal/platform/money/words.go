package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var smallNumbers = [...]string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tensWords = [...]string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety",
}

var scaleWords = []struct {
	value uint64
	name  string
}{
	{1_000_000_000_000_000_000, "quintillion"},
	{1_000_000_000_000_000, "quadrillion"},
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
}

// ToWords spells n in lower-case English using short-scale names.
// Tens and units are hyphenated: 38400 -> "thirty-eight thousand four hundred".
func ToWords(n int64) string {
	if n == 0 {
		return smallNumbers[0]
	}
	if n < 0 {
		// -(n+1)+1 avoids overflow for math.MinInt64.
		return "minus " + spell(uint64(-(n+1))+1)
	}
	return spell(uint64(n))
}

// AmountInWords rounds d to the nearest whole unit and renders it as
// upper-case words followed by " ONLY".
func AmountInWords(d decimal.Decimal) string {
	words := ToWords(d.Round(0).IntPart())
	return cases.Upper(language.English).String(words) + " ONLY"
}

func spell(n uint64) string {
	parts := make([]string, 0, 8)
	for _, scale := range scaleWords {
		if n >= scale.value {
			parts = append(parts, belowThousand(n/scale.value), scale.name)
			n %= scale.value
		}
	}
	if n > 0 {
		parts = append(parts, belowThousand(n))
	}
	return strings.Join(parts, " ")
}

func belowThousand(n uint64) string {
	parts := make([]string, 0, 3)
	if n >= 100 {
		parts = append(parts, smallNumbers[n/100], "hundred")
		n %= 100
	}
	switch {
	case n >= 20:
		word := tensWords[n/10]
		if n%10 != 0 {
			word += "-" + smallNumbers[n%10]
		}
		parts = append(parts, word)
	case n > 0:
		parts = append(parts, smallNumbers[n])
	}
	return strings.Join(parts, " ")
}
