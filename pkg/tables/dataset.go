package tables

import (
	"github.com/podiumlabs/podium/pkg/constants"
	"github.com/podiumlabs/podium/pkg/errors"
)

// EventKey identifies one event result row: one athlete in one event of one
// edition. result_id cannot serve as the key because team events share one
// result_id across every athlete on the team.
type EventKey struct {
	AthleteID string
	EditionID string
	Sport     string
	Event     string
}

// Key returns the row's EventKey.
func (e EventResult) Key() EventKey {
	return EventKey{
		AthleteID: e.AthleteID,
		EditionID: e.EditionID,
		Sport:     e.Sport,
		Event:     e.Event,
	}
}

// Dataset bundles the four canonical tables and their identifier indexes.
// Row order is preserved: base rows keep their input order and merged rows
// are appended, so repeated runs produce identical output files.
type Dataset struct {
	Athletes  []Athlete
	Countries []Country
	Games     []Games
	Events    []EventResult

	athleteByID  map[string]int // athlete ID -> index into Athletes
	countryByNOC map[string]int
	gamesByID    map[string]int
	eventByKey   map[EventKey]int
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		athleteByID:  make(map[string]int),
		countryByNOC: make(map[string]int),
		gamesByID:    make(map[string]int),
		eventByKey:   make(map[EventKey]int),
	}
}

// AddAthlete appends an athlete row. Identifier collisions are fatal.
func (d *Dataset) AddAthlete(a Athlete) error {
	if _, exists := d.athleteByID[a.ID]; exists {
		return errors.NewDuplicateIDError(constants.TableAthlete, a.ID)
	}
	d.athleteByID[a.ID] = len(d.Athletes)
	d.Athletes = append(d.Athletes, a)
	return nil
}

// Athlete looks up an athlete row by identifier.
func (d *Dataset) Athlete(id string) (Athlete, bool) {
	i, ok := d.athleteByID[id]
	if !ok {
		return Athlete{}, false
	}
	return d.Athletes[i], true
}

// AddCountry appends a country row. Code collisions are fatal.
func (d *Dataset) AddCountry(c Country) error {
	if _, exists := d.countryByNOC[c.NOC]; exists {
		return errors.NewDuplicateIDError(constants.TableCountry, c.NOC)
	}
	d.countryByNOC[c.NOC] = len(d.Countries)
	d.Countries = append(d.Countries, c)
	return nil
}

// Country looks up a country row by NOC code.
func (d *Dataset) Country(noc string) (Country, bool) {
	i, ok := d.countryByNOC[noc]
	if !ok {
		return Country{}, false
	}
	return d.Countries[i], true
}

// AddGames appends a games edition row. One row per edition.
func (d *Dataset) AddGames(g Games) error {
	if _, exists := d.gamesByID[g.EditionID]; exists {
		return errors.NewDuplicateIDError(constants.TableGames, g.EditionID)
	}
	d.gamesByID[g.EditionID] = len(d.Games)
	d.Games = append(d.Games, g)
	return nil
}

// GamesEdition looks up a games row by edition identifier.
func (d *Dataset) GamesEdition(editionID string) (Games, bool) {
	i, ok := d.gamesByID[editionID]
	if !ok {
		return Games{}, false
	}
	return d.Games[i], true
}

// SetGames replaces an existing games row, preserving its position.
func (d *Dataset) SetGames(g Games) error {
	i, ok := d.gamesByID[g.EditionID]
	if !ok {
		return errors.NewNotFoundError(constants.TableGames, g.EditionID)
	}
	d.Games[i] = g
	return nil
}

// PutEvent appends an event result row, or updates the existing row with the
// same key. The update path is what makes merging idempotent: a second
// occurrence of the same incoming row overwrites rather than duplicates.
// It reports whether an existing row was updated.
func (d *Dataset) PutEvent(e EventResult) bool {
	key := e.Key()
	if i, exists := d.eventByKey[key]; exists {
		d.Events[i] = e
		return true
	}
	d.eventByKey[key] = len(d.Events)
	d.Events = append(d.Events, e)
	return false
}

// HasEvent reports whether a row with the given key exists.
func (d *Dataset) HasEvent(key EventKey) bool {
	_, ok := d.eventByKey[key]
	return ok
}

// RemoveEvents drops every event row matching the predicate and reindexes.
// Used to exclude rows with referential gaps from the final output.
func (d *Dataset) RemoveEvents(drop func(EventResult) bool) {
	kept := d.Events[:0]
	d.eventByKey = make(map[EventKey]int, len(d.Events))
	for _, e := range d.Events {
		if drop(e) {
			continue
		}
		d.eventByKey[e.Key()] = len(kept)
		kept = append(kept, e)
	}
	d.Events = kept
}
