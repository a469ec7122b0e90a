package tables

import "strconv"

// TallyColumns is the schema contract of the derived medal tally table.
// Column casing is inherited from the base dataset's reporting format.
var TallyColumns = []string{
	"edition", "edition_id", "Country", "NOC", "number_of_athletes",
	"gold_medal_count", "silver_medal_count", "bronze_medal_count", "total_medals",
}

// TallyRow is one row of the derived medal tally: per-country, per-edition
// medal counts plus the distinct count of medal-winning athletes. The tally
// is recomputed from the event result table and never independently mutated.
type TallyRow struct {
	Edition      string
	EditionID    string
	Country      string // display country name
	NOC          string
	AthleteCount int // distinct athletes who won at least one medal
	Gold         int
	Silver       int
	Bronze       int
	Total        int
}

// Record renders the row in column order.
func (t TallyRow) Record() []string {
	return []string{
		t.Edition, t.EditionID, t.Country, t.NOC,
		strconv.Itoa(t.AthleteCount),
		strconv.Itoa(t.Gold), strconv.Itoa(t.Silver), strconv.Itoa(t.Bronze),
		strconv.Itoa(t.Total),
	}
}
