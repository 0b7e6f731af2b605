// Package naira renders and parses display prices. Format and Parse are
// inverses: Parse(Format(n)) == n for every n >= 0.
package naira

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbol is the currency prefix used on all display prices.
const Symbol = "₦"

// Format renders an integer amount as a display price with thousands
// separators, e.g. 5000 -> "₦5,000".
func Format(amount int) string {
	digits := strconv.Itoa(amount)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return Symbol + sign + b.String()
}

// Parse strips the currency symbol, separators and surrounding space from a
// display price and returns the integer amount it renders.
func Parse(display string) (int, error) {
	s := strings.TrimSpace(display)
	s = strings.ReplaceAll(s, Symbol, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty price %q", display)
	}
	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", display)
	}
	return amount, nil
}
