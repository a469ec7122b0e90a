package podium

import (
	"path/filepath"
	"strconv"

	"github.com/podiumlabs/podium/internal/csvio"
	"github.com/podiumlabs/podium/pkg/normalize"
	"github.com/podiumlabs/podium/pkg/tables"
)

// loadDataset reads the four base tables. Games and events load first so the
// athlete loader can resolve two-digit birth years against the year of each
// athlete's earliest recorded appearance.
func loadDataset(cfg *config) (*tables.Dataset, error) {
	ds := tables.NewDataset()

	gameRecs, err := csvio.ReadTable(cfg.gamesFile, tables.GamesColumns)
	if err != nil {
		return nil, err
	}
	yearByEdition := make(map[string]int, len(gameRecs))
	for _, rec := range gameRecs {
		g := tables.GamesFromRecord(rec)
		if err := ds.AddGames(g); err != nil {
			return nil, err
		}
		if year, err := strconv.Atoi(g.Year); err == nil {
			yearByEdition[g.EditionID] = year
		}
	}

	eventRecs, err := csvio.ReadTable(cfg.eventFile, baseEventColumns())
	if err != nil {
		return nil, err
	}
	refYear := make(map[string]int)
	for _, rec := range eventRecs {
		e := tables.EventResultFromRecord(rec)
		ds.PutEvent(e)
		if _, seen := refYear[e.AthleteID]; !seen {
			if year, ok := yearByEdition[e.EditionID]; ok {
				refYear[e.AthleteID] = year
			}
		}
	}

	athleteRecs, err := csvio.ReadTable(cfg.athleteFile, tables.AthleteColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range athleteRecs {
		var opts []normalize.ParseOption
		if year, ok := refYear[rec["athlete_id"]]; ok {
			opts = append(opts, normalize.WithReferenceYear(year))
		}
		born := normalize.ParseDate(rec["born"], opts...)
		if err := ds.AddAthlete(tables.AthleteFromRecord(rec, born)); err != nil {
			return nil, err
		}
	}

	countryRecs, err := csvio.ReadTable(cfg.countryFile, tables.CountryColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range countryRecs {
		if err := ds.AddCountry(tables.Country{NOC: rec["noc"], Name: rec["country"]}); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// baseEventColumns is the input contract of the event result file: the
// persisted columns minus the derived age column this pipeline appends.
func baseEventColumns() []string {
	return tables.EventResultColumns[:len(tables.EventResultColumns)-1]
}

// loadBundle reads the incoming edition's five files.
func loadBundle(cfg *config) (*tables.Bundle, error) {
	b := &tables.Bundle{
		Edition:   cfg.edition,
		EditionID: cfg.editionID,
		Events:    make(map[[2]string]bool),
		Teams:     make(map[tables.Participation]bool),
	}

	athleteRecs, err := csvio.ReadTable(filepath.Join(cfg.bundleDir, "athletes.csv"), tables.IncomingAthleteColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range athleteRecs {
		b.Athletes = append(b.Athletes, tables.IncomingAthlete{
			Code:            rec["code"],
			Name:            rec["name"],
			NameTV:          rec["name_tv"],
			Gender:          rec["gender"],
			BirthDate:       rec["birth_date"],
			CountryCode:     rec["country_code"],
			CountryLong:     rec["country_long"],
			NationalityCode: rec["nationality_code"],
			Height:          rec["height"],
			Weight:          rec["weight"],
			Disciplines:     rec["disciplines"],
			Events:          rec["events"],
		})
	}

	nocRecs, err := csvio.ReadTable(filepath.Join(cfg.bundleDir, "nocs.csv"), tables.IncomingNOCColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range nocRecs {
		b.NOCs = append(b.NOCs, tables.IncomingNOC{Code: rec["code"], CountryLong: rec["country_long"]})
	}

	medalRecs, err := csvio.ReadTable(filepath.Join(cfg.bundleDir, "medallists.csv"), tables.MedallistColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range medalRecs {
		b.Medallists = append(b.Medallists, tables.Medallist{
			AthleteCode: rec["code_athlete"],
			Discipline:  rec["discipline"],
			Event:       rec["event"],
			MedalType:   rec["medal_type"],
		})
	}

	teamRecs, err := csvio.ReadTable(filepath.Join(cfg.bundleDir, "teams.csv"), tables.TeamColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range teamRecs {
		// Despite the plural column name, each row names a single event.
		for _, code := range normalize.ParseList(rec["athletes_codes"]) {
			b.Teams[tables.Participation{
				AthleteCode: code,
				Discipline:  rec["discipline"],
				Event:       rec["events"],
			}] = true
		}
	}

	eventRecs, err := csvio.ReadTable(filepath.Join(cfg.bundleDir, "events.csv"), tables.IncomingEventColumns)
	if err != nil {
		return nil, err
	}
	for _, rec := range eventRecs {
		b.Events[[2]string{rec["sport"], rec["event"]}] = true
	}

	return b, nil
}
