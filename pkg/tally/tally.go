// Package tally recomputes the per-edition medal tally from the event result
// table. The tally is a pure derivation: it is rebuilt from scratch on every
// run and never merged or hand-edited.
package tally

import (
	"sort"
	"strconv"
	"strings"

	"github.com/podiumlabs/podium/pkg/tables"
)

// group identifies one tally row under construction.
type group struct {
	editionID string
	noc       string
}

// teamMedalKey deduplicates team medals: one medal per country per event,
// however many athletes stood on the podium.
type teamMedalKey struct {
	editionID string
	sport     string
	event     string
	noc       string
	medal     tables.Medal
}

type counts struct {
	gold     int
	silver   int
	bronze   int
	athletes map[string]bool // distinct medal-winning athlete IDs
}

// Compute rebuilds the medal tally from the dataset's event result table.
// Rows are ordered by edition (chronological), then total medals descending,
// then NOC code ascending, so output files are stable across runs.
func Compute(ds *tables.Dataset) []tables.TallyRow {
	byGroup := make(map[group]*counts)
	seenTeamMedal := make(map[teamMedalKey]bool)

	for _, e := range ds.Events {
		if !e.Medal.Won() {
			continue
		}

		g := group{editionID: e.EditionID, noc: e.NOC}
		c, ok := byGroup[g]
		if !ok {
			c = &counts{athletes: make(map[string]bool)}
			byGroup[g] = c
		}
		c.athletes[e.AthleteID] = true

		// The base rows spell the flag "True", incoming rows "TRUE".
		if strings.EqualFold(e.TeamSport, "true") {
			k := teamMedalKey{
				editionID: e.EditionID, sport: e.Sport, event: e.Event,
				noc: e.NOC, medal: e.Medal,
			}
			if seenTeamMedal[k] {
				continue
			}
			seenTeamMedal[k] = true
		}

		switch e.Medal {
		case tables.MedalGold:
			c.gold++
		case tables.MedalSilver:
			c.silver++
		case tables.MedalBronze:
			c.bronze++
		}
	}

	rows := make([]tables.TallyRow, 0, len(byGroup))
	for g, c := range byGroup {
		row := tables.TallyRow{
			EditionID:    g.editionID,
			NOC:          g.noc,
			AthleteCount: len(c.athletes),
			Gold:         c.gold,
			Silver:       c.silver,
			Bronze:       c.bronze,
			Total:        c.gold + c.silver + c.bronze,
		}
		if games, ok := ds.GamesEdition(g.editionID); ok {
			row.Edition = games.Edition
		}
		if country, ok := ds.Country(g.noc); ok {
			row.Country = country.Name
		}
		rows = append(rows, row)
	}

	order := editionOrder(ds)
	rank := func(editionID string) int {
		if r, ok := order[editionID]; ok {
			return r
		}
		return len(order) // editions missing from the games table sort last
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if ra, rb := rank(a.EditionID), rank(b.EditionID); ra != rb {
			return ra < rb
		}
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.NOC < b.NOC
	})
	return rows
}

// editionOrder maps edition identifiers to their chronological rank, by year
// then identifier. Editions absent from the games table sort last.
func editionOrder(ds *tables.Dataset) map[string]int {
	type edition struct {
		id   string
		year int
	}
	editions := make([]edition, 0, len(ds.Games))
	for _, g := range ds.Games {
		year, _ := strconv.Atoi(g.Year)
		editions = append(editions, edition{id: g.EditionID, year: year})
	}
	sort.Slice(editions, func(i, j int) bool {
		if editions[i].year != editions[j].year {
			return editions[i].year < editions[j].year
		}
		return numericLess(editions[i].id, editions[j].id)
	})

	order := make(map[string]int, len(editions))
	for i, e := range editions {
		order[e.id] = i
	}
	return order
}

// numericLess compares identifiers numerically when both parse, otherwise
// lexically.
func numericLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
