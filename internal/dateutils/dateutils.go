// Package dateutils decodes the date representations found in bank
// statement exports: day-first strings with one- or two-digit fields,
// ISO dates, and spreadsheet serial numbers.
//
// The heuristics are best-effort. Day-first order and the two-digit-year
// pivot are assumptions that hold for typical recent European statements;
// they cannot be proven from the text alone.
package dateutils

import (
	"regexp"
	"strconv"
	"time"
)

// LayoutISO is the canonical output format for every decoded date.
const LayoutISO = "2006-01-02"

const (
	// serialEpochOffsetDays is the spreadsheet serial value of 1970-01-01.
	// Subtracting it converts a serial date to days since the Unix epoch.
	serialEpochOffsetDays = 25569

	// twoDigitYearPivot splits two-digit years between centuries:
	// values above it become 19xx, values at or below become 20xx.
	// Statements predating 1950 are out of scope.
	twoDigitYearPivot = 50

	secondsPerDay = 86400
)

// Plausible serial-date magnitudes: 30000 is mid-1982, 50000 is 2036.
// Numbers in this window are assumed to be dates rather than amounts.
const (
	SerialMin = 30000
	SerialMax = 50000
)

var (
	dmyPattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})$`)
	isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ToISO decodes a date string into YYYY-MM-DD form. It accepts day-first
// D/M/Y strings (separators "/", "-" or ".", two- or four-digit years) and
// already-ISO strings, which pass through unchanged. The second return is
// false when the string is neither.
func ToISO(s string) (string, bool) {
	if isoPattern.MatchString(s) {
		return s, true
	}

	m := dmyPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if len(m[3]) <= 2 {
		year = ExpandTwoDigitYear(year)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (32/13/2024 becomes a different date),
	// so round-trip the fields to reject impossible day/month values.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", false
	}

	return t.Format(LayoutISO), true
}

// ExpandTwoDigitYear maps a two-digit year to a full year using the pivot:
// 75 becomes 1975, 23 becomes 2023, 50 becomes 2050.
func ExpandTwoDigitYear(year int) int {
	if year > twoDigitYearPivot {
		return 1900 + year
	}
	return 2000 + year
}

// SerialToISO converts a spreadsheet serial date (days since 1899-12-30)
// to an ISO date. The conversion goes through the Unix epoch so the result
// is identical on every platform and locale.
func SerialToISO(serial float64) string {
	seconds := int64((serial - serialEpochOffsetDays) * secondsPerDay)
	return time.Unix(seconds, 0).UTC().Format(LayoutISO)
}

// LooksLikeSerial reports whether a numeric value falls in the plausible
// serial-date window used by the no-header fallback.
func LooksLikeSerial(v float64) bool {
	return v >= SerialMin && v <= SerialMax
}

// IsDMYString reports whether a string matches the day-first date pattern
// without fully decoding it.
func IsDMYString(s string) bool {
	return dmyPattern.MatchString(s)
}

// Today returns the current date in ISO form, the default for rows whose
// date cell cannot be decoded.
func Today() string {
	return time.Now().UTC().Format(LayoutISO)
}
