package reconcile

import (
	"github.com/podiumlabs/podium/pkg/constants"
	"github.com/podiumlabs/podium/pkg/errors"
	"github.com/podiumlabs/podium/pkg/normalize"
)

// AthleteQuery is the natural key of one incoming athlete row. The incoming
// data carries two country codes: the nationality code and the code of the
// delegation the athlete competes for; both are tried.
type AthleteQuery struct {
	Name   string         // display-form full name, given name first
	Born   normalize.Date // normalized birth date, may be unknown
	NOC    string         // nationality code
	AltNOC string         // competing delegation code, tried after NOC

	// Source identifies the incoming row in rejection reports.
	Source string
}

// empty reports whether the query carries no identity at all.
func (q AthleteQuery) empty() bool {
	return normalize.Key(q.Name) == "" && !q.Born.Known() && q.NOC == "" && q.AltNOC == ""
}

// athleteStrategy is one tier of the ranked athlete matching list.
type athleteStrategy struct {
	name       string
	confidence Confidence
	match      func(ix *Index, q AthleteQuery) (string, bool)
}

// athleteStrategies is the ranked strategy list, tried in order. Exact
// natural-key tiers come before the name-only fallback so the confidence of
// every resolution reflects the strongest evidence available.
var athleteStrategies = []athleteStrategy{
	{
		name:       "exact",
		confidence: ConfidenceExact,
		match: func(ix *Index, q AthleteQuery) (string, bool) {
			if !q.Born.Known() {
				return "", false
			}
			id, ok := ix.athleteExact[athleteKey{name: normalize.Key(q.Name), born: q.Born.String(), noc: q.NOC}]
			return id, ok
		},
	},
	{
		name:       "exact-delegation",
		confidence: ConfidenceExact,
		match: func(ix *Index, q AthleteQuery) (string, bool) {
			if !q.Born.Known() || q.AltNOC == "" || q.AltNOC == q.NOC {
				return "", false
			}
			id, ok := ix.athleteExact[athleteKey{name: normalize.Key(q.Name), born: q.Born.String(), noc: q.AltNOC}]
			return id, ok
		},
	},
	{
		name:       "name-noc",
		confidence: ConfidenceName,
		match: func(ix *Index, q AthleteQuery) (string, bool) {
			id, ok := ix.athleteByName[nameKey{name: normalize.Key(q.Name), noc: q.NOC}]
			return id, ok
		},
	},
	{
		name:       "name-delegation",
		confidence: ConfidenceName,
		match: func(ix *Index, q AthleteQuery) (string, bool) {
			if q.AltNOC == "" || q.AltNOC == q.NOC {
				return "", false
			}
			id, ok := ix.athleteByName[nameKey{name: normalize.Key(q.Name), noc: q.AltNOC}]
			return id, ok
		},
	},
}

// ResolveAthlete maps an incoming athlete row onto an existing identifier, or
// mints a new one and registers the row's natural keys so every later
// occurrence of the same athlete resolves identically. A row with an entirely
// empty natural key is rejected with a MissingNaturalKeyError.
func (ix *Index) ResolveAthlete(q AthleteQuery) (Resolution, error) {
	if q.empty() {
		return Resolution{}, errors.NewMissingNaturalKeyError(constants.TableAthlete, q.Source)
	}

	for _, s := range athleteStrategies {
		if id, ok := s.match(ix, q); ok {
			return Resolution{ID: id, Confidence: s.confidence, Strategy: s.name}, nil
		}
	}

	id, err := ix.mintAthleteID()
	if err != nil {
		return Resolution{}, err
	}
	ix.registerAthlete(q.Name, q.Born, q.NOC, id)

	return Resolution{ID: id, Minted: true, Confidence: ConfidenceNone, Strategy: "mint"}, nil
}
