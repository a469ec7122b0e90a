// Package reconcile maps the natural keys of incoming rows onto the
// identifiers of an existing dataset, minting new identifiers when no match
// exists. Matching is a ranked list of strategies tried in order, so every
// resolved identifier carries the confidence of the strategy that produced
// it. All state lives in an Index owned by a single merge run; reconciliation
// is deterministic for a fixed base dataset and incoming bundle.
package reconcile

import (
	"strconv"

	"github.com/podiumlabs/podium/pkg/constants"
	"github.com/podiumlabs/podium/pkg/errors"
	"github.com/podiumlabs/podium/pkg/normalize"
	"github.com/podiumlabs/podium/pkg/tables"
)

// athleteKey is the exact natural key of an athlete: matching-form name,
// canonical birth date, and NOC code.
type athleteKey struct {
	name string
	born string
	noc  string
}

// nameKey is the fallback natural key: matching-form name and NOC only.
type nameKey struct {
	name string
	noc  string
}

// Index is the natural-key index of one merge run. It is built from a base
// dataset snapshot, updated as identifiers are minted, and passed explicitly
// between pipeline stages, never shared beyond the run that owns it.
type Index struct {
	athleteExact  map[athleteKey]string // exact natural key -> athlete ID
	athleteByName map[nameKey]string    // fallback natural key -> athlete ID
	athleteIDs    map[string]bool       // every known athlete ID
	maxAthleteID  int

	countryByCode map[string]string // NOC code -> NOC code (existence map)
	countryByName map[string]string // matching-form display name -> NOC code

	aliases Aliases
}

// Option configures an Index.
type Option func(*Index)

// WithAliases installs a country alias table consulted when an incoming
// country name differs from the stored spelling.
func WithAliases(aliases Aliases) Option {
	return func(ix *Index) {
		ix.aliases = aliases
	}
}

// NewIndex builds the natural-key index from a base dataset snapshot.
//
// For athletes, the exact key (name, born, NOC) is registered only when the
// birth date is known; the fallback key (name, NOC) is registered for every
// athlete, first row winning, so fallback matches stay deterministic in base
// row order.
func NewIndex(ds *tables.Dataset, opts ...Option) *Index {
	ix := &Index{
		athleteExact:  make(map[athleteKey]string),
		athleteByName: make(map[nameKey]string),
		athleteIDs:    make(map[string]bool),
		countryByCode: make(map[string]string),
		countryByName: make(map[string]string),
		aliases:       DefaultAliases(),
	}
	for _, opt := range opts {
		opt(ix)
	}

	for _, a := range ds.Athletes {
		ix.registerAthlete(a.Name, a.Born, a.NOC, a.ID)
	}
	for _, c := range ds.Countries {
		ix.registerCountry(c.NOC, c.Name)
	}

	return ix
}

// registerAthlete records an athlete's natural keys and tracks the highest
// numeric identifier seen, which seeds the minting sequence.
func (ix *Index) registerAthlete(name string, born normalize.Date, noc, id string) {
	ix.athleteIDs[id] = true
	if n, err := strconv.Atoi(id); err == nil && n > ix.maxAthleteID {
		ix.maxAthleteID = n
	}

	key := nameKey{name: normalize.Key(name), noc: noc}
	if key.name == "" && key.noc == "" {
		return
	}
	if born.Known() {
		ix.athleteExact[athleteKey{name: key.name, born: born.String(), noc: noc}] = id
	}
	if _, taken := ix.athleteByName[key]; !taken {
		ix.athleteByName[key] = id
	}
}

// registerCountry records a country's code and matching-form name.
func (ix *Index) registerCountry(noc, name string) {
	ix.countryByCode[noc] = noc
	key := normalize.Key(name)
	if _, taken := ix.countryByName[key]; !taken && key != "" {
		ix.countryByName[key] = noc
	}
}

// mintAthleteID mints the next athlete identifier: monotonically increasing
// past every identifier already seen, so a collision can only mean a logic
// error in the sequence itself.
func (ix *Index) mintAthleteID() (string, error) {
	ix.maxAthleteID++
	id := strconv.Itoa(ix.maxAthleteID)
	if ix.athleteIDs[id] {
		return "", errors.NewDuplicateIDError(constants.TableAthlete, id)
	}
	ix.athleteIDs[id] = true
	return id, nil
}
