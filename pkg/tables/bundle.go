package tables

// Incoming-bundle schema contracts. The new edition arrives as five files
// with their own column vocabulary; these are the columns the loader honors.
var (
	// IncomingAthleteColumns is the contract of the incoming athletes file.
	IncomingAthleteColumns = []string{
		"code", "name", "name_tv", "gender", "birth_date", "country_code",
		"country_long", "nationality_code", "height", "weight", "disciplines", "events",
	}

	// IncomingNOCColumns is the contract of the incoming NOCs file.
	IncomingNOCColumns = []string{"code", "country_long"}

	// MedallistColumns is the contract of the incoming medallists file.
	MedallistColumns = []string{"code_athlete", "discipline", "event", "medal_type"}

	// TeamColumns is the contract of the incoming teams file.
	TeamColumns = []string{"discipline", "events", "athletes_codes"}

	// IncomingEventColumns is the contract of the incoming events file.
	IncomingEventColumns = []string{"sport", "event"}
)

// IncomingAthlete is one row of the incoming athletes file. Fields are raw:
// normalization happens in the pipeline, where the matching context lives.
type IncomingAthlete struct {
	Code            string // source-local identifier, never merged as-is
	Name            string // surname-first form
	NameTV          string // given-name-first form, preferred for display
	Gender          string
	BirthDate       string // raw date
	CountryCode     string // NOC the athlete competes for
	CountryLong     string
	NationalityCode string // NOC of the athlete's nationality
	Height          string
	Weight          string
	Disciplines     string // bracketed list field
	Events          string // bracketed list field
}

// Medallist is one row of the incoming medallists file.
type Medallist struct {
	AthleteCode string
	Discipline  string
	Event       string
	MedalType   string // decorated form, e.g. "Gold Medal"
}

// Participation identifies one athlete's entry in one event of the incoming
// edition, by source-local athlete code.
type Participation struct {
	AthleteCode string
	Discipline  string
	Event       string
}

// IncomingNOC is one row of the incoming NOCs file.
type IncomingNOC struct {
	Code        string
	CountryLong string
}

// Bundle is the incoming edition: the five files of a new Games release,
// already decoded but not yet normalized or reconciled.
type Bundle struct {
	Edition   string // display name of the edition being merged
	EditionID string // edition identifier in the base games table

	Athletes   []IncomingAthlete
	NOCs       []IncomingNOC
	Medallists []Medallist

	// Events is the set of valid (sport, event) pairs of the edition; athlete
	// discipline x event expansion is filtered against it.
	Events map[[2]string]bool

	// Teams is the set of team-event participations, used to flag team rows.
	Teams map[Participation]bool
}

// MedallistKey returns the participation key of a medallist row.
func (m Medallist) MedallistKey() Participation {
	return Participation{AthleteCode: m.AthleteCode, Discipline: m.Discipline, Event: m.Event}
}
