// Package derive computes values that are functions of merged rows rather
// than stored facts, such as an athlete's age at an edition.
package derive

import (
	"time"

	"github.com/podiumlabs/podium/pkg/normalize"
)

// Age returns the athlete's age in whole years on the given day, counting a
// year as complete only once the birthday has passed. The second return is
// false when the birth date is unknown or carries only a year, since a
// year-resolution date cannot place the birthday relative to the start of
// the games.
func Age(born normalize.Date, on time.Time) (int, bool) {
	if born.Precision() != normalize.PrecisionFull {
		return 0, false
	}

	b := born.Time()
	years := on.Year() - b.Year()
	if on.Month() < b.Month() || (on.Month() == b.Month() && on.Day() < b.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}
