package tables

import "strconv"

// EventResultColumns is the schema contract of the event result table.
// The age column is appended to the base dataset's columns by the pipeline.
var EventResultColumns = []string{
	"edition", "edition_id", "country_noc", "sport", "event", "result_id",
	"athlete", "athlete_id", "pos", "medal", "isTeamSport", "age",
}

// EventResult is one row of the event result table: one athlete's
// participation in one event of one edition.
type EventResult struct {
	Edition     string // display name of the edition
	EditionID   string // foreign key into the games table
	NOC         string // foreign key into the country table
	Sport       string
	Event       string
	ResultID    string
	AthleteName string
	AthleteID   string // foreign key into the athlete table
	Pos         string
	Medal       Medal
	TeamSport   string // TRUE / FALSE, preserved as given by the source

	// Age at the event, derived from the athlete's birth date and the
	// edition's start date. Nil when the birth date is unknown.
	Age *int
}

// Record renders the row in column order.
func (e EventResult) Record() []string {
	age := ""
	if e.Age != nil {
		age = strconv.Itoa(*e.Age)
	}
	return []string{
		e.Edition, e.EditionID, e.NOC, e.Sport, e.Event, e.ResultID,
		e.AthleteName, e.AthleteID, e.Pos, e.Medal.String(), e.TeamSport, age,
	}
}

// EventResultFromRecord builds an EventResult from a header-keyed record.
func EventResultFromRecord(rec map[string]string) EventResult {
	return EventResult{
		Edition:     rec["edition"],
		EditionID:   rec["edition_id"],
		NOC:         rec["country_noc"],
		Sport:       rec["sport"],
		Event:       rec["event"],
		ResultID:    rec["result_id"],
		AthleteName: rec["athlete"],
		AthleteID:   rec["athlete_id"],
		Pos:         rec["pos"],
		Medal:       ParseMedal(rec["medal"]),
		TeamSport:   rec["isTeamSport"],
	}
}
