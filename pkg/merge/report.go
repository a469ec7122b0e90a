package merge

import "github.com/podiumlabs/podium/pkg/errors"

// Rejection records one incoming row that was dropped from the merge, with
// the reason. Rejected rows are reported exactly once and never retried.
type Rejection struct {
	Table  string // table the row was destined for
	Source string // source-local identifier of the row
	Reason string
}

// Report summarizes one merge run. Counters split resolved identifiers by
// matching strategy so the share of low-confidence links is visible.
type Report struct {
	Edition   string
	EditionID string

	AthletesMatched int // incoming athletes resolved to existing IDs
	AthletesMinted  int
	CountriesMinted int

	EventsAdded   int
	EventsUpdated int // rows overwritten in place on re-merge
	Backfilled    int // medal rows reconstructed from the medallist file

	// Strategies counts athlete resolutions per matching tier.
	Strategies map[string]int

	Rejected []Rejection
	Gaps     []*errors.ReferentialGapError
}

func newReport(edition, editionID string) *Report {
	return &Report{
		Edition:    edition,
		EditionID:  editionID,
		Strategies: make(map[string]int),
	}
}

// reject records a dropped row.
func (r *Report) reject(table, source, reason string) {
	r.Rejected = append(r.Rejected, Rejection{Table: table, Source: source, Reason: reason})
}
