package tables

import "github.com/podiumlabs/podium/pkg/normalize"

// GamesColumns is the schema contract of the games edition table.
var GamesColumns = []string{
	"edition", "edition_id", "edition_url", "year", "city", "country_flag_url",
	"country_noc", "start_date", "end_date", "competition_date", "isHeld",
}

// Games is one row of the games edition table: one row per Olympic edition.
type Games struct {
	Edition         string // display name, e.g. "2024 Summer Olympics"
	EditionID       string // unique identifier
	EditionURL      string
	Year            string
	City            string
	FlagURL         string
	NOC             string // host country code
	StartDate       string // canonical dd-Mon-yyyy, may be empty for editions never held
	EndDate         string
	CompetitionDate string // canonical "dd-Mon-yyyy to dd-Mon-yyyy"
	IsHeld          string // non-empty when the edition was cancelled (e.g. "War")

	// Competition is the parsed competition date range, kept in memory for
	// the age calculator. Not a persisted column.
	Competition normalize.DateRange
}

// Held reports whether the edition actually took place.
func (g Games) Held() bool {
	return g.IsHeld == ""
}

// Record renders the row in column order.
func (g Games) Record() []string {
	return []string{
		g.Edition, g.EditionID, g.EditionURL, g.Year, g.City, g.FlagURL,
		g.NOC, g.StartDate, g.EndDate, g.CompetitionDate, g.IsHeld,
	}
}

// GamesFromRecord builds a Games row from a header-keyed record.
func GamesFromRecord(rec map[string]string) Games {
	return Games{
		Edition:         rec["edition"],
		EditionID:       rec["edition_id"],
		EditionURL:      rec["edition_url"],
		Year:            rec["year"],
		City:            rec["city"],
		FlagURL:         rec["country_flag_url"],
		NOC:             rec["country_noc"],
		StartDate:       rec["start_date"],
		EndDate:         rec["end_date"],
		CompetitionDate: rec["competition_date"],
		IsHeld:          rec["isHeld"],
	}
}
