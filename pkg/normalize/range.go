package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/podiumlabs/podium/pkg/constants"
)

// DateRange is an inclusive span of competition days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether both ends of the range are set.
func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// String renders the canonical "dd-Mon-yyyy to dd-Mon-yyyy" form.
func (r DateRange) String() string {
	if !r.Valid() {
		return ""
	}
	return r.Start.Format(constants.DateLayout) + constants.DateRangeSeparator + r.End.Format(constants.DateLayout)
}

// ParseDateRange parses a canonical "dd-Mon-yyyy to dd-Mon-yyyy" range.
// An em-dash placeholder or any unparseable input yields an invalid range.
func ParseDateRange(s string) DateRange {
	s = strings.TrimSpace(s)
	if s == "" || s == "—" {
		return DateRange{}
	}

	start, end, ok := strings.Cut(s, "to")
	if !ok {
		return DateRange{}
	}

	startDt, err := time.Parse(constants.DateLayout, strings.TrimSpace(start))
	if err != nil {
		return DateRange{}
	}
	endDt, err := time.Parse(constants.DateLayout, strings.TrimSpace(end))
	if err != nil {
		return DateRange{}
	}
	return DateRange{Start: startDt, End: endDt}
}

// NormalizeDateRange rewrites a raw competition date range into the canonical
// form. The raw data uses an en-dash between the halves and omits pieces that
// must be inferred from context:
//
//	21 July – 8 August 2021    year only on the end date
//	6 – 13 April               start month implied by the end date
//	14 May – 28 October        year never stated, supplied by caller
//
// Inputs that cannot be normalized are returned unchanged so the caller can
// decide whether the original placeholder (e.g. a bare dash) should survive.
func NormalizeDateRange(raw string, year int) string {
	s := strings.TrimSpace(raw)

	halves := strings.Split(s, "–")
	if len(halves) != 2 {
		return raw
	}
	start := strings.Fields(strings.TrimSpace(halves[0]))
	end := strings.Fields(strings.TrimSpace(halves[1]))

	if len(start) == 0 || len(end) < 2 {
		return raw
	}

	endDay, endMonth := end[0], end[1]
	if len(end) == 3 {
		// Year stated on the end date wins over the caller's fallback
		y, err := strconv.Atoi(end[2])
		if err != nil {
			return raw
		}
		year = y
	}

	startDay := start[0]
	startMonth := endMonth
	if len(start) >= 2 {
		startMonth = start[1]
	}

	startDt, err := time.Parse("2 January 2006", startDay+" "+titleMonth(startMonth)+" "+strconv.Itoa(year))
	if err != nil {
		return raw
	}
	endDt, err := time.Parse("2 January 2006", endDay+" "+titleMonth(endMonth)+" "+strconv.Itoa(year))
	if err != nil {
		return raw
	}

	return DateRange{Start: startDt, End: endDt}.String()
}
