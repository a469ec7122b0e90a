package merge

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podiumlabs/podium/pkg/normalize"
	"github.com/podiumlabs/podium/pkg/tables"
)

func baseDataset(t *testing.T) *tables.Dataset {
	t.Helper()
	ds := tables.NewDataset()

	require.NoError(t, ds.AddGames(tables.Games{
		Edition: "2020 Summer Olympics", EditionID: "61", Year: "2021",
		StartDate: "23 July 2021", EndDate: "8 August 2021",
		CompetitionDate: "21 July – 8 August 2021",
	}))
	require.NoError(t, ds.AddGames(tables.Games{
		Edition: "2024 Summer Olympics", EditionID: "63", Year: "2024",
		CompetitionDate: "—",
	}))
	require.NoError(t, ds.AddGames(tables.Games{
		Edition: "1916 Summer Olympics", EditionID: "51", Year: "1916",
		CompetitionDate: "—", IsHeld: "War",
	}))

	require.NoError(t, ds.AddCountry(tables.Country{NOC: "FRA", Name: "France"}))
	require.NoError(t, ds.AddCountry(tables.Country{NOC: "GBR", Name: "United Kingdom"}))

	require.NoError(t, ds.AddAthlete(tables.Athlete{
		ID: "100001", Name: "Teddy Riner", Sex: "M",
		Born: normalize.ParseDate("1989-04-07"), Country: "France", NOC: "FRA",
	}))

	require.NoError(t, ds.AddAthlete(tables.Athlete{
		ID: "100002", Name: "Old Timer", Sex: "M",
		Born: normalize.ParseDate("1990-01-01"), Country: "France", NOC: "FRA",
	}))
	ds.PutEvent(tables.EventResult{
		Edition: "2020 Summer Olympics", EditionID: "61", NOC: "FRA",
		Sport: "Judo", Event: "+100kg Men", ResultID: "49000",
		AthleteName: "Old Timer", AthleteID: "100002",
		Medal: tables.MedalNone, TeamSport: "False",
	})

	return ds
}

func parisBundle() *tables.Bundle {
	return &tables.Bundle{
		Edition:   "2024 Summer Olympics",
		EditionID: "63",
		Athletes: []tables.IncomingAthlete{
			{
				Code: "1532872", Name: "RINER Teddy", NameTV: "Teddy RINER",
				Gender: "M", BirthDate: "1989-04-07",
				CountryCode: "FRA", CountryLong: "France", NationalityCode: "FRA",
				Disciplines: "['Judo']", Events: "[\"+100kg Men\", \"Mixed Team\"]",
			},
			{
				Code: "1912525", Name: "BOERS Isayah",
				Gender: "M", BirthDate: "1999-12-21",
				CountryCode: "NED", CountryLong: "Netherlands", NationalityCode: "NED",
				Disciplines: "['Athletics']", Events: "[\"400m Men\"]",
			},
		},
		NOCs: []tables.IncomingNOC{
			{Code: "FRA", CountryLong: "France"},
			{Code: "GB2", CountryLong: "Great Britain"},
			{Code: "NED", CountryLong: "Netherlands"},
		},
		Medallists: []tables.Medallist{
			{AthleteCode: "1532872", Discipline: "Judo", Event: "+100kg Men", MedalType: "Gold Medal"},
			{AthleteCode: "1532872", Discipline: "Judo", Event: "Mixed Team", MedalType: "Gold Medal"},
		},
		Events: map[[2]string]bool{
			{"Judo", "+100kg Men"}:    true,
			{"Judo", "Mixed Team"}:    true,
			{"Athletics", "400m Men"}: true,
		},
		Teams: map[tables.Participation]bool{
			{AthleteCode: "1532872", Discipline: "Judo", Event: "Mixed Team"}: true,
		},
	}
}

func findEvent(t *testing.T, ds *tables.Dataset, athleteID, event string) tables.EventResult {
	t.Helper()
	for _, e := range ds.Events {
		if e.AthleteID == athleteID && e.Event == event {
			return e
		}
	}
	t.Fatalf("no event row for athlete %s in %s", athleteID, event)
	return tables.EventResult{}
}

func TestMergeMatchesAndMints(t *testing.T) {
	ds := baseDataset(t)
	rep, err := New().Merge(context.Background(), ds, parisBundle())
	require.NoError(t, err)

	// Riner matched the existing row, Boers was minted past the base max.
	assert.Equal(t, 1, rep.AthletesMatched)
	assert.Equal(t, 1, rep.AthletesMinted)

	riner := findEvent(t, ds, "100001", "+100kg Men")
	assert.Equal(t, "2024 Summer Olympics", riner.Edition)
	assert.Equal(t, tables.MedalGold, riner.Medal)
	assert.Equal(t, "1", riner.Pos)
	assert.Equal(t, "FALSE", riner.TeamSport)

	team := findEvent(t, ds, "100001", "Mixed Team")
	assert.Equal(t, "TRUE", team.TeamSport)

	boers, ok := ds.Athlete("100003")
	require.True(t, ok)
	assert.Equal(t, "Isayah Boers", boers.Name)
	assert.Equal(t, "NED", boers.NOC)

	sprint := findEvent(t, ds, "100003", "400m Men")
	assert.Equal(t, tables.MedalNone, sprint.Medal)
	assert.Equal(t, "", sprint.Pos)
}

func TestMergeMintsSharedResultIDs(t *testing.T) {
	ds := baseDataset(t)
	b := parisBundle()
	// A second judoka in the same event must share Riner's result_id.
	b.Athletes = append(b.Athletes, tables.IncomingAthlete{
		Code: "1538596", NameTV: "Joseph TERHEC", Gender: "M", BirthDate: "2000-01-01",
		CountryCode: "FRA", CountryLong: "France", NationalityCode: "FRA",
		Disciplines: "['Judo']", Events: "[\"+100kg Men\"]",
	})

	_, err := New().Merge(context.Background(), ds, b)
	require.NoError(t, err)

	riner := findEvent(t, ds, "100001", "+100kg Men")
	terhec := findEvent(t, ds, "100004", "+100kg Men")
	assert.Equal(t, riner.ResultID, terhec.ResultID)
	assert.Equal(t, "49001", riner.ResultID) // minted past the base maximum

	other := findEvent(t, ds, "100001", "Mixed Team")
	assert.NotEqual(t, riner.ResultID, other.ResultID)
}

func TestMergeCountriesThroughAlias(t *testing.T) {
	ds := baseDataset(t)
	rep, err := New().Merge(context.Background(), ds, parisBundle())
	require.NoError(t, err)

	// France and Great Britain resolved to existing rows; only the
	// Netherlands was minted.
	assert.Equal(t, 1, rep.CountriesMinted)
	_, ok := ds.Country("NED")
	assert.True(t, ok)
	_, ok = ds.Country("GB2")
	assert.False(t, ok)
}

func TestMergeRewritesDelegationCodes(t *testing.T) {
	ds := baseDataset(t)
	b := parisBundle()
	// A delegation code that only resolves through the alias table. The
	// athlete's rows must land under the stored code, not the incoming one.
	b.Athletes = append(b.Athletes, tables.IncomingAthlete{
		Code: "1541270", NameTV: "Daryll NEITA", Gender: "F", BirthDate: "1996-08-29",
		CountryCode: "GB2", CountryLong: "Great Britain", NationalityCode: "GB2",
		Disciplines: "['Athletics']", Events: "[\"400m Men\"]",
	})

	rep, err := New().Merge(context.Background(), ds, b)
	require.NoError(t, err)
	assert.Empty(t, rep.Gaps)

	neita, ok := ds.Athlete("100004")
	require.True(t, ok)
	assert.Equal(t, "GBR", neita.NOC)

	row := findEvent(t, ds, "100004", "400m Men")
	assert.Equal(t, "GBR", row.NOC)
}

func TestMergeDerivesAges(t *testing.T) {
	ds := baseDataset(t)
	_, err := New().Merge(context.Background(), ds, parisBundle())
	require.NoError(t, err)

	// Riner, born 07-Apr-1989, was 35 when competition opened 24-Jul-2024.
	riner := findEvent(t, ds, "100001", "+100kg Men")
	require.NotNil(t, riner.Age)
	assert.Equal(t, 35, *riner.Age)

	// Boers, born 21-Dec-1999, had not yet turned 25.
	boers := findEvent(t, ds, "100003", "400m Men")
	require.NotNil(t, boers.Age)
	assert.Equal(t, 24, *boers.Age)

	// Base rows are filled too, from their own edition's dates.
	old := findEvent(t, ds, "100002", "+100kg Men")
	require.NotNil(t, old.Age)
	assert.Equal(t, 31, *old.Age)
}

func TestMergeStampsEditionDates(t *testing.T) {
	ds := baseDataset(t)
	_, err := New().Merge(context.Background(), ds, parisBundle())
	require.NoError(t, err)

	paris, ok := ds.GamesEdition("63")
	require.True(t, ok)
	assert.Equal(t, "26-Jul-2024", paris.StartDate)
	assert.Equal(t, "11-Aug-2024", paris.EndDate)
	assert.Equal(t, "24-Jul-2024 to 11-Aug-2024", paris.CompetitionDate)

	tokyo, ok := ds.GamesEdition("61")
	require.True(t, ok)
	assert.Equal(t, "23-Jul-2021", tokyo.StartDate)
	assert.Equal(t, "21-Jul-2021 to 08-Aug-2021", tokyo.CompetitionDate)

	// Cancelled editions keep their placeholders.
	berlin, ok := ds.GamesEdition("51")
	require.True(t, ok)
	assert.Equal(t, "—", berlin.CompetitionDate)
}

func TestMergeBackfillsMedallists(t *testing.T) {
	ds := baseDataset(t)
	b := parisBundle()
	// Riner's athlete row lists no individual event, but the medal exists.
	b.Athletes[0].Events = "[\"Mixed Team\"]"

	rep, err := New().Merge(context.Background(), ds, b)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Backfilled)

	row := findEvent(t, ds, "100001", "+100kg Men")
	assert.Equal(t, tables.MedalGold, row.Medal)
	assert.Equal(t, "1", row.Pos)
	assert.Equal(t, "", row.ResultID)
}

func TestMergeTwiceEqualsMergeOnce(t *testing.T) {
	once := baseDataset(t)
	_, err := New().Merge(context.Background(), once, parisBundle())
	require.NoError(t, err)

	twice := baseDataset(t)
	_, err = New().Merge(context.Background(), twice, parisBundle())
	require.NoError(t, err)
	rep, err := New().Merge(context.Background(), twice, parisBundle())
	require.NoError(t, err)

	assert.Zero(t, rep.AthletesMinted)
	assert.Zero(t, rep.EventsAdded)

	// The second run must reuse the result identifiers stored by the first
	// rather than minting fresh ones past the new maximum.
	assert.Equal(t, "49001", findEvent(t, twice, "100001", "+100kg Men").ResultID)

	opts := cmp.AllowUnexported(normalize.Date{})
	assert.Empty(t, cmp.Diff(once.Athletes, twice.Athletes, opts))
	assert.Empty(t, cmp.Diff(once.Countries, twice.Countries, opts))
	assert.Empty(t, cmp.Diff(once.Games, twice.Games, opts))
	assert.Empty(t, cmp.Diff(once.Events, twice.Events, opts))
}

func TestMergeRejectsEmptyNaturalKey(t *testing.T) {
	ds := baseDataset(t)
	b := parisBundle()
	b.Athletes = append(b.Athletes, tables.IncomingAthlete{Code: "999999"})

	rep, err := New().Merge(context.Background(), ds, b)
	require.NoError(t, err)

	require.Len(t, rep.Rejected, 1)
	assert.Equal(t, "999999", rep.Rejected[0].Source)
}

func TestMergeExcludesReferentialGaps(t *testing.T) {
	ds := baseDataset(t)
	// A base row pointing at an athlete that has no biography.
	ds.PutEvent(tables.EventResult{
		Edition: "2020 Summer Olympics", EditionID: "61", NOC: "FRA",
		Sport: "Swimming", Event: "100m Freestyle", ResultID: "48000",
		AthleteName: "Ghost", AthleteID: "36110",
	})

	rep, err := New().Merge(context.Background(), ds, parisBundle())
	require.NoError(t, err)

	require.Len(t, rep.Gaps, 1)
	assert.Equal(t, "36110", rep.Gaps[0].ID)
	for _, e := range ds.Events {
		assert.NotEqual(t, "36110", e.AthleteID)
	}
}

func TestMergeFailsWithoutGamesRow(t *testing.T) {
	ds := tables.NewDataset()
	_, err := New().Merge(context.Background(), ds, parisBundle())
	assert.Error(t, err)
}

func TestMergeFiltersUnknownEvents(t *testing.T) {
	ds := baseDataset(t)
	b := parisBundle()
	delete(b.Events, [2]string{"Athletics", "400m Men"})

	_, err := New().Merge(context.Background(), ds, b)
	require.NoError(t, err)

	for _, e := range ds.Events {
		assert.NotEqual(t, "400m Men", e.Event)
	}
}
