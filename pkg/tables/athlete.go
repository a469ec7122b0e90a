package tables

import "github.com/podiumlabs/podium/pkg/normalize"

// AthleteColumns is the schema contract of the athlete biography table.
var AthleteColumns = []string{
	"athlete_id", "name", "sex", "born", "height", "weight", "country", "country_noc",
}

// Athlete is one row of the athlete biography table.
type Athlete struct {
	ID      string         // unique identifier, numeric in the base dataset
	Name    string         // display form, given name first
	Sex     string         // M / F
	Born    normalize.Date // canonical birth date, may be unknown
	Height  string
	Weight  string
	Country string // display country name
	NOC     string // nationality code, foreign key into the country table
}

// Record renders the row in column order.
func (a Athlete) Record() []string {
	return []string{a.ID, a.Name, a.Sex, a.Born.String(), a.Height, a.Weight, a.Country, a.NOC}
}

// AthleteFromRecord builds an Athlete from a header-keyed record. The born
// date is passed in already normalized: resolving it needs per-athlete context
// (the years the athlete competed in) that only the loader has.
func AthleteFromRecord(rec map[string]string, born normalize.Date) Athlete {
	return Athlete{
		ID:      rec["athlete_id"],
		Name:    rec["name"],
		Sex:     rec["sex"],
		Born:    born,
		Height:  rec["height"],
		Weight:  rec["weight"],
		Country: rec["country"],
		NOC:     rec["country_noc"],
	}
}
