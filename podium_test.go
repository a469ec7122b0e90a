package podium

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podiumlabs/podium/internal/csvio"
	"github.com/podiumlabs/podium/pkg/tables"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF"+content), 0o644))
}

// fixture lays out a small base dataset and an incoming bundle on disk.
func fixture(t *testing.T) (dataDir, bundleDir string) {
	t.Helper()
	root := t.TempDir()
	dataDir = filepath.Join(root, "data")
	bundleDir = filepath.Join(root, "paris")

	writeFile(t, filepath.Join(dataDir, "olympics_games.csv"),
		`edition,edition_id,edition_url,year,city,country_flag_url,country_noc,start_date,end_date,competition_date,isHeld
2020 Summer Olympics,61,/editions/61,2021,Tokyo,,JPN,23 July 2021,8 August 2021,21 July – 8 August 2021,
2024 Summer Olympics,63,/editions/63,2024,Paris,,FRA,,,—,
`)
	writeFile(t, filepath.Join(dataDir, "olympics_country.csv"),
		`noc,country
FRA,France
GBR,United Kingdom
JPN,Japan
`)
	writeFile(t, filepath.Join(dataDir, "olympic_athlete_bio.csv"),
		`athlete_id,name,sex,born,height,weight,country,country_noc
100001,Teddy Riner,M,1989-04-07,204,140,France,FRA
100002,Vintage Star,M,04-Apr-49,,,France,FRA
`)
	writeFile(t, filepath.Join(dataDir, "olympic_athlete_event_results.csv"),
		`edition,edition_id,country_noc,sport,event,result_id,athlete,athlete_id,pos,medal,isTeamSport
2020 Summer Olympics,61,FRA,Judo,+100kg Men,49000,Teddy Riner,100001,3,Bronze,False
2020 Summer Olympics,61,FRA,Athletics,Marathon Men,48999,Vintage Star,100002,,,False
`)

	writeFile(t, filepath.Join(bundleDir, "athletes.csv"),
		`code,name,name_tv,gender,birth_date,country_code,country_long,nationality_code,height,weight,disciplines,events
1532872,RINER Teddy,Teddy RINER,M,1989-04-07,FRA,France,FRA,204,140,['Judo'],"[""+100kg Men""]"
1912525,BOERS Isayah,,M,1999-12-21,NED,Netherlands,NED,,,['Athletics'],"[""400m Men""]"
`)
	writeFile(t, filepath.Join(bundleDir, "nocs.csv"),
		`code,country_long
FRA,France
GB2,Great Britain
NED,Netherlands
`)
	writeFile(t, filepath.Join(bundleDir, "medallists.csv"),
		`code_athlete,discipline,event,medal_type
1532872,Judo,+100kg Men,Gold Medal
`)
	writeFile(t, filepath.Join(bundleDir, "teams.csv"),
		`discipline,events,athletes_codes
Judo,Mixed Team,"['1532872']"
`)
	writeFile(t, filepath.Join(bundleDir, "events.csv"),
		`sport,event
Judo,+100kg Men
Athletics,400m Men
`)

	return dataDir, bundleDir
}

func TestIntegrate(t *testing.T) {
	dataDir, bundleDir := fixture(t)

	res, err := Integrate(context.Background(),
		WithDataDir(dataDir),
		WithBundleDir(bundleDir),
	)
	require.NoError(t, err)
	assert.NotEmpty(t, res.RunID)

	// Riner matched his existing row; Boers was minted.
	assert.Equal(t, 1, res.Report.AthletesMatched)
	assert.Equal(t, 1, res.Report.AthletesMinted)
	assert.Equal(t, 1, res.Report.CountriesMinted) // only NED; GB2 is an alias of GBR

	boers, ok := res.Dataset.Athlete("100003")
	require.True(t, ok)
	assert.Equal(t, "Isayah Boers", boers.Name)

	// Two-digit birth year resolved against the athlete's first appearance.
	vintage, ok := res.Dataset.Athlete("100002")
	require.True(t, ok)
	assert.Equal(t, "04-Apr-1949", vintage.Born.String())

	// The 2024 tally: France one gold from one athlete.
	var found bool
	for _, row := range res.Tally {
		if row.EditionID == "63" && row.NOC == "FRA" {
			found = true
			assert.Equal(t, 1, row.Gold)
			assert.Equal(t, 1, row.Total)
			assert.Equal(t, 1, row.AthleteCount)
		}
	}
	assert.True(t, found, "2024 tally row for FRA missing")
}

func TestIntegrateWriteOutputs(t *testing.T) {
	dataDir, bundleDir := fixture(t)
	outDir := t.TempDir()

	res, err := Integrate(context.Background(),
		WithDataDir(dataDir),
		WithBundleDir(bundleDir),
		WithOutputDir(outDir),
	)
	require.NoError(t, err)
	require.NoError(t, res.Write())

	for _, name := range []string{
		"new_olympic_athlete_bio.csv",
		"new_olympic_athlete_event_results.csv",
		"new_olympics_games.csv",
		"new_olympics_country.csv",
		"new_medal_tally.csv",
	} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}

	events, err := csvio.ReadTable(filepath.Join(outDir, "new_olympic_athlete_event_results.csv"), tables.EventResultColumns)
	require.NoError(t, err)

	var riner2024 map[string]string
	for _, rec := range events {
		if rec["edition_id"] == "63" && rec["athlete_id"] == "100001" {
			riner2024 = rec
		}
	}
	require.NotNil(t, riner2024, "merged event row missing from output")
	assert.Equal(t, "Gold", riner2024["medal"])
	assert.Equal(t, "1", riner2024["pos"])
	assert.Equal(t, "35", riner2024["age"])

	// A row without a medal serializes the explicit None value.
	var vintage map[string]string
	for _, rec := range events {
		if rec["athlete_id"] == "100002" {
			vintage = rec
		}
	}
	require.NotNil(t, vintage)
	assert.Equal(t, "None", vintage["medal"])

	// Countries are ordered by display name.
	countries, err := csvio.ReadTable(filepath.Join(outDir, "new_olympics_country.csv"), tables.CountryColumns)
	require.NoError(t, err)
	require.Len(t, countries, 4)
	assert.Equal(t, "France", countries[0]["country"])
	assert.Equal(t, "United Kingdom", countries[3]["country"])
}

func TestIntegrateMissingBaseFile(t *testing.T) {
	_, bundleDir := fixture(t)
	_, err := Integrate(context.Background(),
		WithDataDir(t.TempDir()),
		WithBundleDir(bundleDir),
	)
	assert.Error(t, err)
}

func TestIntegrateAliasFile(t *testing.T) {
	dataDir, bundleDir := fixture(t)
	aliasPath := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(aliasPath, []byte("countries:\n  Holland: Netherlands\n"), 0o644))

	res, err := Integrate(context.Background(),
		WithDataDir(dataDir),
		WithBundleDir(bundleDir),
		WithAliasFile(aliasPath),
	)
	require.NoError(t, err)
	assert.NotNil(t, res)
}
