package content

import (
	"fmt"
	"strconv"
	"unicode"
)

// ParseSI parses an integer with an optional magnitude suffix, so large
// answers can be typed as "1.5k" or "3B". Accepted suffixes:
// k/K thousand, m/M million, g/G/b/B billion, T trillion.
func ParseSI(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty string")
	}

	runes := []rune(s)
	last := runes[len(runes)-1]
	if unicode.IsDigit(last) {
		return strconv.ParseInt(s, 10, 64)
	}

	var factor int64
	switch last {
	case 'k', 'K':
		factor = 1_000
	case 'm', 'M':
		factor = 1_000_000
	case 'g', 'G', 'b', 'B':
		factor = 1_000_000_000
	case 'T':
		factor = 1_000_000_000_000
	default:
		return 0, fmt.Errorf("unexpected last char %q", last)
	}

	n, err := strconv.ParseFloat(string(runes[:len(runes)-1]), 64)
	if err != nil {
		return 0, err
	}
	return int64(n * float64(factor)), nil
}
