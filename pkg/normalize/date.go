// Package normalize rewrites the inconsistent field representations found in
// Olympic datasets (dates, free-text names, bracketed list fields) into
// canonical forms. All transforms are pure: a value either normalizes to its
// canonical form or becomes an explicit unknown marker, never a silent guess.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/podiumlabs/podium/pkg/constants"
)

// Precision describes how much of a parsed date is trustworthy.
type Precision int

const (
	// PrecisionNone marks an unknown date.
	PrecisionNone Precision = iota
	// PrecisionFull marks a date usable down to the day.
	PrecisionFull
	// PrecisionYear marks a date where only the year is known. Year-precision
	// dates render canonically but are never used for age derivation.
	PrecisionYear
)

// Date is a calendar date with explicit precision. The zero value is the
// unknown marker.
type Date struct {
	t    time.Time
	prec Precision
}

// Unknown is the explicit unknown date marker.
var Unknown = Date{}

// DateOf returns a full-precision Date for the given time.
func DateOf(t time.Time) Date {
	return Date{
		t:    time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		prec: PrecisionFull,
	}
}

// YearOf returns a year-precision Date for the given year.
func YearOf(year int) Date {
	return Date{t: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), prec: PrecisionYear}
}

// Known reports whether the date carries any information.
func (d Date) Known() bool { return d.prec != PrecisionNone }

// Full reports whether the date is precise to the day.
func (d Date) Full() bool { return d.prec == PrecisionFull }

// Precision returns the date's precision.
func (d Date) Precision() Precision { return d.prec }

// Time returns the underlying time. Only meaningful when Known.
func (d Date) Time() time.Time { return d.t }

// Year returns the calendar year, or 0 for an unknown date.
func (d Date) Year() int {
	if !d.Known() {
		return 0
	}
	return d.t.Year()
}

// String renders the canonical dd-Mon-yyyy form, or "" for unknown.
// Year-precision dates render as 01-Jan-yyyy, matching the base dataset.
func (d Date) String() string {
	if !d.Known() {
		return ""
	}
	return d.t.Format(constants.DateLayout)
}

// parseOptions carries the optional context a raw date may need.
type parseOptions struct {
	referenceYear int // infers the century of two-digit years
	defaultYear   int // completes day-and-month-only dates
}

// ParseOption configures ParseDate.
type ParseOption func(*parseOptions)

// WithReferenceYear supplies a reference year (e.g. the year of an edition the
// athlete competed in) used to resolve two-digit years deterministically: the
// resolved year is the latest one not after the reference. Without a
// reference, two-digit years are rejected rather than guessed.
func WithReferenceYear(year int) ParseOption {
	return func(o *parseOptions) { o.referenceYear = year }
}

// WithDefaultYear supplies the year for dates that carry only day and month.
func WithDefaultYear(year int) ParseOption {
	return func(o *parseOptions) { o.defaultYear = year }
}

// ParseDate normalizes a raw date string into a Date. It accepts the formats
// observed across the Olympic datasets:
//
//	1991-10-21          ISO day
//	26-Jul-2024         canonical day
//	Dec-67, 04-Apr-49   two-digit year, needs WithReferenceYear
//	24 November 1873    spelled-out day
//	6 April             day and month, needs WithDefaultYear
//	July 1882           month and year
//	1879                bare year (year precision)
//	(1926 or 1927)      first 4-digit year inside free text (year precision)
//
// Anything else is Unknown.
func ParseDate(raw string, opts ...ParseOption) Date {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	s := cleanDateString(raw)
	if s == "" {
		return Unknown
	}

	if d, ok := parseDashed(s, o.referenceYear); ok {
		return d
	}
	if d, ok := parseSpelled(s, o.defaultYear); ok {
		return d
	}
	if len(s) == 4 && allDigits(s) {
		if year, err := strconv.Atoi(s); err == nil {
			return YearOf(year)
		}
	}
	if year, ok := embeddedYear(s); ok {
		return YearOf(year)
	}

	return Unknown
}

// cleanDateString trims the noise observed in raw data: surrounding quotes
// (straight and curly), unicode dash variants, and stray whitespace.
func cleanDateString(raw string) string {
	s := strings.TrimSpace(raw)
	replacer := strings.NewReplacer("–", "-", "—", "-", "‐", "-")
	s = replacer.Replace(s)
	s = strings.Trim(s, `"`)
	s = strings.Trim(s, "“”")
	return strings.ToLower(strings.TrimSpace(s))
}

// parseDashed handles the dash-separated forms: ISO dates, canonical
// dd-Mon-yyyy, and the two-digit-year forms that need a reference year.
func parseDashed(s string, referenceYear int) (Date, bool) {
	parts := strings.Split(s, "-")

	switch len(parts) {
	case 3:
		if allDigits(parts[0]) && allDigits(parts[1]) && allDigits(parts[2]) {
			// ISO yyyy-mm-dd
			if t, err := time.Parse("2006-01-02", s); err == nil {
				return DateOf(t), true
			}
			return Unknown, true
		}
		if allDigits(parts[0]) && allDigits(parts[2]) {
			day, mon, year := parts[0], parts[1], parts[2]
			if len(year) == 4 {
				// Already canonical dd-Mon-yyyy
				if t, err := time.Parse("2-Jan-2006", day+"-"+titleMonth(mon)+"-"+year); err == nil {
					return DateOf(t), true
				}
				return Unknown, true
			}
			// dd-Mon-yy
			full, ok := resolveCentury(year, referenceYear)
			if !ok {
				return Unknown, true
			}
			if t, err := time.Parse("2-Jan-2006", day+"-"+titleMonth(mon)+"-"+strconv.Itoa(full)); err == nil {
				return DateOf(t), true
			}
			return Unknown, true
		}
	case 2:
		// Mon-yy
		mon, year := parts[0], parts[1]
		if !allDigits(year) || allDigits(mon) {
			return Unknown, false
		}
		full, ok := resolveCentury(year, referenceYear)
		if !ok {
			return Unknown, true
		}
		if t, err := time.Parse("2-Jan-2006", "1-"+titleMonth(mon)+"-"+strconv.Itoa(full)); err == nil {
			return DateOf(t), true
		}
		return Unknown, true
	}

	return Unknown, false
}

// parseSpelled handles the space-separated forms with spelled-out months.
func parseSpelled(s string, defaultYear int) (Date, bool) {
	words := strings.Fields(s)

	switch len(words) {
	case 3:
		// dd Month yyyy
		if allDigits(words[0]) && allDigits(words[2]) {
			if t, err := time.Parse("2 January 2006", words[0]+" "+titleMonth(words[1])+" "+words[2]); err == nil {
				return DateOf(t), true
			}
			return Unknown, true
		}
	case 2:
		if allDigits(words[0]) && !allDigits(words[1]) {
			// dd Month, year supplied by context
			if defaultYear == 0 {
				return Unknown, true
			}
			if t, err := time.Parse("2 January 2006", words[0]+" "+titleMonth(words[1])+" "+strconv.Itoa(defaultYear)); err == nil {
				return DateOf(t), true
			}
			return Unknown, true
		}
		if !allDigits(words[0]) && allDigits(words[1]) && len(words[1]) == 4 {
			// Month yyyy, pinned to the first of the month
			if t, err := time.Parse("2 January 2006", "1 "+titleMonth(words[0])+" "+words[1]); err == nil {
				return DateOf(t), true
			}
			return Unknown, true
		}
	}

	return Unknown, false
}

// resolveCentury expands a two-digit year against the reference year: the
// result is the latest year in the reference century (or the one before) that
// does not postdate the reference. Without a reference the year is rejected.
func resolveCentury(twoDigit string, referenceYear int) (int, bool) {
	if referenceYear == 0 {
		return 0, false
	}
	yy, err := strconv.Atoi(twoDigit)
	if err != nil {
		return 0, false
	}
	full := (referenceYear/100)*100 + yy
	if full > referenceYear {
		full -= 100
	}
	return full, true
}

// embeddedYear extracts the first 4-digit run from free text such as
// "(1926 or 1927)".
func embeddedYear(s string) (int, bool) {
	for i := 0; i+4 <= len(s); i++ {
		if allDigits(s[i : i+4]) {
			// A longer digit run is not a year; skip the whole run, not
			// just the window at its head.
			if i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
				continue
			}
			if i+4 < len(s) && s[i+4] >= '0' && s[i+4] <= '9' {
				continue
			}
			year, err := strconv.Atoi(s[i : i+4])
			if err != nil {
				return 0, false
			}
			return year, true
		}
	}
	return 0, false
}

// titleMonth uppercases the first letter of a month token so it matches the
// reference layout's month names.
func titleMonth(mon string) string {
	if mon == "" {
		return mon
	}
	return strings.ToUpper(mon[:1]) + strings.ToLower(mon[1:])
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
