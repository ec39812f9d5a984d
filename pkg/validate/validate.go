// Package validate holds the pure input validators for the interactive
// session. Parsing is strict: the whole input must match, nothing is
// trimmed here. Sign and range policy (positive, non-negative) belongs to
// the prompt loops, not to these functions.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	decimalRe    = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	identifierRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Integer parses s as a whole base-10 integer. Partial parses, surrounding
// whitespace and out-of-range values are rejected; a leading sign is fine.
func Integer(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MenuChoice parses a menu selection in [min, max]. Any input containing a
// space character is rejected before parsing.
func MenuChoice(s string, min, max int) (int, bool) {
	if strings.Contains(s, " ") {
		return 0, false
	}
	n, ok := Integer(s)
	if !ok || n < min || n > max {
		return 0, false
	}
	return n, true
}

// Decimal parses an unsigned decimal amount: one or more digits, optionally
// followed by a dot and one or two fraction digits. No sign, no leading
// dot, no exponent.
func Decimal(s string) (decimal.Decimal, bool) {
	if !decimalRe.MatchString(s) {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Identifier reports whether s is a valid employee code: one or more ASCII
// letters or digits, nothing else.
func Identifier(s string) bool {
	return identifierRe.MatchString(s)
}
