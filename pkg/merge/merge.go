// Package merge integrates an incoming edition bundle into the base dataset.
// The pipeline is a single pass over the incoming rows: normalize, reconcile
// identifiers against the base tables, append or update in place, then derive
// the age column and verify referential completeness. Merging the same bundle
// twice leaves the dataset identical to merging it once.
package merge

import (
	"context"
	"strconv"

	"github.com/podiumlabs/podium/pkg/constants"
	"github.com/podiumlabs/podium/pkg/derive"
	"github.com/podiumlabs/podium/pkg/errors"
	"github.com/podiumlabs/podium/pkg/logging"
	"github.com/podiumlabs/podium/pkg/normalize"
	"github.com/podiumlabs/podium/pkg/reconcile"
	"github.com/podiumlabs/podium/pkg/tables"
)

// Merger drives merge runs. A zero-option Merger carries the built-in alias
// table and the fixed dates of the 2024 edition.
type Merger struct {
	aliases      reconcile.Aliases
	editionDates editionDates
}

// editionDates are the authoritative dates of the edition being merged. The
// source bundle does not carry them, so they are configured on the Merger.
type editionDates struct {
	start       string
	end         string
	competition string
}

// Option configures a Merger.
type Option func(*Merger)

// WithAliases installs a country alias table for the reconciler.
func WithAliases(aliases reconcile.Aliases) Option {
	return func(m *Merger) {
		m.aliases = aliases
	}
}

// WithEditionDates overrides the authoritative start, end, and competition
// dates stamped onto the incoming edition's games row.
func WithEditionDates(start, end, competition string) Option {
	return func(m *Merger) {
		m.editionDates = editionDates{start: start, end: end, competition: competition}
	}
}

// New creates a Merger.
func New(opts ...Option) *Merger {
	m := &Merger{
		aliases: reconcile.DefaultAliases(),
		editionDates: editionDates{
			start:       constants.ParisStartDate,
			end:         constants.ParisEndDate,
			competition: constants.ParisCompetitionDate,
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge integrates the bundle into the dataset. The dataset is modified in
// place; the returned report carries the run's counters, rejected rows, and
// referential gaps. A non-nil error means the dataset must not be written.
func (m *Merger) Merge(ctx context.Context, ds *tables.Dataset, b *tables.Bundle) (*Report, error) {
	ctx = logging.WithEdition(ctx, b.EditionID)
	log := logging.Ctx(ctx)
	rep := newReport(b.Edition, b.EditionID)

	if err := m.fixupGames(ds, b); err != nil {
		return nil, err
	}

	ix := reconcile.NewIndex(ds, reconcile.WithAliases(m.aliases))

	nocs, err := m.mergeCountries(ix, ds, b, rep)
	if err != nil {
		return nil, err
	}

	codeToID, seen, err := m.mergeAthletes(ctx, ix, ds, b, nocs, rep)
	if err != nil {
		return nil, err
	}
	m.backfillMedallists(ds, b, codeToID, seen, rep)

	m.deriveAges(ds)
	m.checkReferences(ctx, ds, rep)

	log.Info().
		Int("athletes_matched", rep.AthletesMatched).
		Int("athletes_minted", rep.AthletesMinted).
		Int("countries_minted", rep.CountriesMinted).
		Int("events_added", rep.EventsAdded).
		Int("events_updated", rep.EventsUpdated).
		Int("backfilled", rep.Backfilled).
		Int("rejected", len(rep.Rejected)).
		Int("referential_gaps", len(rep.Gaps)).
		Msg("merge complete")

	return rep, nil
}

// fixupGames normalizes the date columns of the games table. The incoming
// edition's dates are stamped from the configured authoritative values; every
// other held edition gets its raw date strings rewritten to canonical form.
// Cancelled editions keep their placeholders untouched.
func (m *Merger) fixupGames(ds *tables.Dataset, b *tables.Bundle) error {
	if _, ok := ds.GamesEdition(b.EditionID); !ok {
		return errors.NewNotFoundError(constants.TableGames, b.EditionID)
	}

	for _, g := range ds.Games {
		switch {
		case g.EditionID == b.EditionID:
			g.StartDate = m.editionDates.start
			g.EndDate = m.editionDates.end
			g.CompetitionDate = m.editionDates.competition
		case g.Held():
			year, err := strconv.Atoi(g.Year)
			if err != nil {
				return errors.NewValidationError("year", g.Year, "games year is not numeric")
			}
			g.StartDate = canonicalDate(g.StartDate, year)
			g.EndDate = canonicalDate(g.EndDate, year)
			g.CompetitionDate = normalize.NormalizeDateRange(g.CompetitionDate, year)
		}

		g.Competition = normalize.ParseDateRange(g.CompetitionDate)
		if err := ds.SetGames(g); err != nil {
			return err
		}
	}
	return nil
}

// canonicalDate rewrites a raw date to dd-Mon-yyyy when it parses to a full
// calendar date; anything else passes through unchanged rather than erasing
// a value the parser does not understand.
func canonicalDate(raw string, year int) string {
	d := normalize.ParseDate(raw, normalize.WithDefaultYear(year))
	if d.Full() {
		return d.String()
	}
	return raw
}

// mergeCountries appends the bundle's NOC rows that are not already present
// under any spelling. Existing codes and recognized names (directly or via
// the alias table) reuse the stored row. The returned map translates every
// incoming delegation code to its reconciled identifier; later stages rewrite
// athlete and event foreign keys through it.
func (m *Merger) mergeCountries(ix *reconcile.Index, ds *tables.Dataset, b *tables.Bundle, rep *Report) (map[string]string, error) {
	nocs := make(map[string]string, len(b.NOCs))
	for _, noc := range b.NOCs {
		res, err := ix.ResolveCountry(reconcile.CountryQuery{Code: noc.Code, Name: noc.CountryLong})
		if err != nil {
			if errors.IsMissingNaturalKey(err) {
				rep.reject(constants.TableCountry, noc.Code, err.Error())
				continue
			}
			return nil, err
		}
		nocs[noc.Code] = res.ID
		if !res.Minted {
			continue
		}
		if err := ds.AddCountry(tables.Country{NOC: res.ID, Name: noc.CountryLong}); err != nil {
			return nil, err
		}
		rep.CountriesMinted++
	}
	return nocs, nil
}

// resolvedNOC translates an incoming delegation code to the reconciled
// identifier. Codes the NOC file never mentioned pass through unchanged.
func resolvedNOC(nocs map[string]string, code string) string {
	if id, ok := nocs[code]; ok {
		return id
	}
	return code
}

// mergeAthletes resolves every incoming athlete, appends new biography rows,
// and expands each athlete's disciplines and events into event result rows.
// It returns the source-code-to-identifier map and the set of participations
// produced, both consumed by the medallist backfill.
func (m *Merger) mergeAthletes(
	ctx context.Context,
	ix *reconcile.Index,
	ds *tables.Dataset,
	b *tables.Bundle,
	nocs map[string]string,
	rep *Report,
) (map[string]string, map[tables.Participation]bool, error) {
	log := logging.Ctx(ctx)

	medals := make(map[tables.Participation]tables.Medal, len(b.Medallists))
	for _, md := range b.Medallists {
		medals[md.MedallistKey()] = tables.ParseMedal(md.MedalType)
	}

	// Result identifiers are shared per (discipline, event) and minted past
	// the highest identifier in the base table. Identifiers already stored
	// for this edition are reused, so re-merging the bundle never re-mints.
	maxResultID := maxNumericResultID(ds)
	resultIDs := make(map[[2]string]string)
	for _, e := range ds.Events {
		if e.EditionID == b.EditionID && e.ResultID != "" {
			resultIDs[[2]string{e.Sport, e.Event}] = e.ResultID
		}
	}

	codeToID := make(map[string]string, len(b.Athletes))
	seen := make(map[tables.Participation]bool)

	for _, in := range b.Athletes {
		name := displayName(in)
		born := normalize.ParseDate(in.BirthDate)
		nationality := resolvedNOC(nocs, in.NationalityCode)
		delegation := resolvedNOC(nocs, in.CountryCode)

		res, err := ix.ResolveAthlete(reconcile.AthleteQuery{
			Name:   name,
			Born:   born,
			NOC:    nationality,
			AltNOC: delegation,
			Source: in.Code,
		})
		if err != nil {
			if errors.IsMissingNaturalKey(err) {
				rep.reject(constants.TableAthlete, in.Code, err.Error())
				continue
			}
			return nil, nil, err
		}

		if res.Minted {
			if err := ds.AddAthlete(tables.Athlete{
				ID:      res.ID,
				Name:    name,
				Sex:     in.Gender,
				Born:    born,
				Height:  in.Height,
				Weight:  in.Weight,
				Country: in.CountryLong,
				NOC:     delegation,
			}); err != nil {
				return nil, nil, err
			}
			rep.AthletesMinted++
		} else {
			rep.AthletesMatched++
		}
		rep.Strategies[res.Strategy]++
		codeToID[in.Code] = res.ID

		for _, dis := range normalize.ParseList(in.Disciplines) {
			for _, ev := range normalize.ParseList(in.Events) {
				pair := [2]string{dis, ev}
				if !b.Events[pair] {
					continue
				}
				key := tables.Participation{AthleteCode: in.Code, Discipline: dis, Event: ev}
				seen[key] = true

				resultID, ok := resultIDs[pair]
				if !ok {
					maxResultID++
					resultID = strconv.Itoa(maxResultID)
					resultIDs[pair] = resultID
				}

				medal := medals[key]
				updated := ds.PutEvent(tables.EventResult{
					Edition:     b.Edition,
					EditionID:   b.EditionID,
					NOC:         delegation,
					Sport:       dis,
					Event:       ev,
					ResultID:    resultID,
					AthleteName: name,
					AthleteID:   res.ID,
					Pos:         medal.Pos(),
					Medal:       medal,
					TeamSport:   teamFlag(b.Teams[key]),
				})
				if updated {
					rep.EventsUpdated++
				} else {
					rep.EventsAdded++
				}
			}
		}
	}

	log.Debug().
		Int("incoming_athletes", len(b.Athletes)).
		Int("result_ids_minted", len(resultIDs)).
		Msg("athlete rows merged")

	return codeToID, seen, nil
}

// backfillMedallists reconstructs event rows for medals whose participation
// never appeared in the athlete file's discipline and event lists, so every
// medal-winning performance reaches the event table.
func (m *Merger) backfillMedallists(
	ds *tables.Dataset,
	b *tables.Bundle,
	codeToID map[string]string,
	seen map[tables.Participation]bool,
	rep *Report,
) {
	for _, md := range b.Medallists {
		key := md.MedallistKey()
		if seen[key] {
			continue
		}
		seen[key] = true

		id, ok := codeToID[md.AthleteCode]
		if !ok {
			rep.reject(constants.TableEventResult, md.AthleteCode, "medallist has no athlete row")
			continue
		}
		athlete, ok := ds.Athlete(id)
		if !ok {
			rep.reject(constants.TableEventResult, md.AthleteCode, "medallist resolved to a missing athlete")
			continue
		}

		medal := tables.ParseMedal(md.MedalType)
		updated := ds.PutEvent(tables.EventResult{
			Edition:     b.Edition,
			EditionID:   b.EditionID,
			NOC:         athlete.NOC,
			Sport:       md.Discipline,
			Event:       md.Event,
			ResultID:    "",
			AthleteName: athlete.Name,
			AthleteID:   id,
			Pos:         medal.Pos(),
			Medal:       medal,
			TeamSport:   teamFlag(b.Teams[key]),
		})
		if updated {
			rep.EventsUpdated++
		} else {
			rep.EventsAdded++
			rep.Backfilled++
		}
	}
}

// deriveAges fills the age column of every event row from the athlete's
// birth date and the edition's start date. Rows whose birth date is unknown
// or year-resolution keep an empty age.
func (m *Merger) deriveAges(ds *tables.Dataset) {
	starts := make(map[string]normalize.DateRange, len(ds.Games))
	for _, g := range ds.Games {
		starts[g.EditionID] = g.Competition
	}

	for i := range ds.Events {
		e := &ds.Events[i]
		e.Age = nil

		span, ok := starts[e.EditionID]
		if !ok || !span.Valid() {
			continue
		}
		athlete, ok := ds.Athlete(e.AthleteID)
		if !ok {
			continue
		}
		if age, known := derive.Age(athlete.Born, span.Start); known {
			e.Age = &age
		}
	}
}

// checkReferences verifies that every event row's foreign keys resolve. Rows
// with gaps are removed from the dataset and recorded on the report; the
// merge itself continues.
func (m *Merger) checkReferences(ctx context.Context, ds *tables.Dataset, rep *Report) {
	log := logging.Ctx(ctx)

	drop := make(map[tables.EventKey]bool)
	for _, e := range ds.Events {
		var gap *errors.ReferentialGapError
		switch {
		case !hasAthlete(ds, e.AthleteID):
			gap = errors.NewReferentialGapError(constants.TableAthlete, "athlete_id", e.AthleteID, e.ResultID)
		case !hasCountry(ds, e.NOC):
			gap = errors.NewReferentialGapError(constants.TableCountry, "country_noc", e.NOC, e.ResultID)
		case !hasGames(ds, e.EditionID):
			gap = errors.NewReferentialGapError(constants.TableGames, "edition_id", e.EditionID, e.ResultID)
		}
		if gap != nil {
			drop[e.Key()] = true
			rep.Gaps = append(rep.Gaps, gap)
		}
	}
	if len(drop) == 0 {
		return
	}

	ds.RemoveEvents(func(e tables.EventResult) bool { return drop[e.Key()] })
	log.Warn().Int("rows", len(drop)).Msg("event rows excluded for referential gaps")
}

func hasAthlete(ds *tables.Dataset, id string) bool {
	_, ok := ds.Athlete(id)
	return ok
}

func hasCountry(ds *tables.Dataset, noc string) bool {
	_, ok := ds.Country(noc)
	return ok
}

func hasGames(ds *tables.Dataset, editionID string) bool {
	_, ok := ds.GamesEdition(editionID)
	return ok
}

// displayName picks the stored display form of an incoming athlete: the
// given-name-first field when present, otherwise the surname-first field
// reversed. Either way the result is title-cased.
func displayName(in tables.IncomingAthlete) string {
	if name := normalize.Display(in.NameTV); name != "" {
		return name
	}
	return normalize.Display(normalize.ReverseName(in.Name))
}

// maxNumericResultID scans the event table for the highest numeric result
// identifier, the base of the minting sequence for new events.
func maxNumericResultID(ds *tables.Dataset) int {
	highest := 0
	for _, e := range ds.Events {
		if n, err := strconv.Atoi(e.ResultID); err == nil && n > highest {
			highest = n
		}
	}
	return highest
}

func teamFlag(team bool) string {
	if team {
		return "TRUE"
	}
	return "FALSE"
}
