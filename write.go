package podium

import (
	"path/filepath"
	"sort"

	"github.com/podiumlabs/podium/internal/csvio"
	"github.com/podiumlabs/podium/pkg/tables"
)

// Output file names, matching the source tooling's expectations.
const (
	athleteOutput = "new_olympic_athlete_bio.csv"
	eventOutput   = "new_olympic_athlete_event_results.csv"
	gamesOutput   = "new_olympics_games.csv"
	countryOutput = "new_olympics_country.csv"
	tallyOutput   = "new_medal_tally.csv"
)

// Write renders the five output tables into the run's output directory. Each
// file is replaced atomically. The country table is ordered by display name;
// all other tables keep row order, base rows first.
func (r *Result) Write() error {
	ds := r.Dataset

	athletes := make([][]string, 0, len(ds.Athletes))
	for _, a := range ds.Athletes {
		athletes = append(athletes, a.Record())
	}
	if err := r.writeTable(athleteOutput, tables.AthleteColumns, athletes); err != nil {
		return err
	}

	events := make([][]string, 0, len(ds.Events))
	for _, e := range ds.Events {
		events = append(events, e.Record())
	}
	if err := r.writeTable(eventOutput, tables.EventResultColumns, events); err != nil {
		return err
	}

	games := make([][]string, 0, len(ds.Games))
	for _, g := range ds.Games {
		games = append(games, g.Record())
	}
	if err := r.writeTable(gamesOutput, tables.GamesColumns, games); err != nil {
		return err
	}

	countries := make([]tables.Country, len(ds.Countries))
	copy(countries, ds.Countries)
	sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })
	countryRows := make([][]string, 0, len(countries))
	for _, c := range countries {
		countryRows = append(countryRows, []string{c.NOC, c.Name})
	}
	if err := r.writeTable(countryOutput, tables.CountryColumns, countryRows); err != nil {
		return err
	}

	tallyRows := make([][]string, 0, len(r.Tally))
	for _, row := range r.Tally {
		tallyRows = append(tallyRows, row.Record())
	}
	return r.writeTable(tallyOutput, tables.TallyColumns, tallyRows)
}

func (r *Result) writeTable(name string, header []string, rows [][]string) error {
	return csvio.WriteTable(filepath.Join(r.outputDir, name), header, rows)
}
