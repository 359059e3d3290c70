// Package currencyutils parses the monetary strings found in statement
// exports into decimals. Separator conventions differ per institution and
// are inferred per value, so parsed amounts are best-effort rather than
// guaranteed exact.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyJunk = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽\sA-Za-z']`)

	// A trailing comma followed by exactly two digits marks the comma as
	// the decimal separator ("1.234,56").
	commaDecimal = regexp.MustCompile(`,\d{2}$`)

	// monetaryPattern matches strings that look like amounts, used when
	// sniffing an unlabeled amount column from a data row.
	monetaryPattern = regexp.MustCompile(`^[€$£+\-]?\s*\d{1,3}([.,']?\d{3})*([.,]\d{1,2})?\s*[€$£]?$`)
)

// ParseAmount parses a monetary string into a decimal.
// Currency symbols, letters and spacing are stripped first; then the
// decimal separator is inferred: a trailing ",dd" means comma-decimal
// (dots are thousands separators), anything else means dot-decimal
// (commas are thousands separators).
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := Standardize(s)
	if cleaned == "" {
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", s, err)
	}
	return d, nil
}

// ParseLenient parses like ParseAmount but absorbs failures: anything
// unparseable becomes zero, which downstream magnitude rules treat as
// "no transaction here".
func ParseLenient(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Standardize strips currency decoration and rewrites the string with "."
// as the decimal separator so decimal.NewFromString can take it.
func Standardize(s string) string {
	s = currencyJunk.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "+" {
		return ""
	}

	if commaDecimal.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	return s
}

// LooksMonetary reports whether a string resembles an amount. It deliberately
// also matches plain integers; the caller excludes date-like columns first.
func LooksMonetary(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return monetaryPattern.MatchString(s)
}
