package podium

import (
	"path/filepath"

	"github.com/podiumlabs/podium/pkg/constants"
)

// config holds the resolved settings of one integration run.
type config struct {
	// Base dataset files.
	gamesFile   string
	countryFile string
	athleteFile string
	eventFile   string

	// Directory holding the incoming edition's five files.
	bundleDir string

	// Directory the merged tables are written to.
	outputDir string

	// Optional YAML alias table merged over the built-in country aliases.
	aliasFile string

	// Edition being merged.
	edition   string
	editionID string
}

func defaultConfig() *config {
	return &config{
		gamesFile:   "olympics_games.csv",
		countryFile: "olympics_country.csv",
		athleteFile: "olympic_athlete_bio.csv",
		eventFile:   "olympic_athlete_event_results.csv",
		bundleDir:   "paris",
		outputDir:   ".",
		edition:     constants.ParisEditionName,
		editionID:   constants.ParisEditionID,
	}
}

// Option is a function that configures an integration run.
type Option func(*config) error

// WithDataDir resolves the four base dataset files relative to dir.
func WithDataDir(dir string) Option {
	return func(c *config) error {
		c.gamesFile = filepath.Join(dir, "olympics_games.csv")
		c.countryFile = filepath.Join(dir, "olympics_country.csv")
		c.athleteFile = filepath.Join(dir, "olympic_athlete_bio.csv")
		c.eventFile = filepath.Join(dir, "olympic_athlete_event_results.csv")
		return nil
	}
}

// WithBundleDir sets the directory holding the incoming edition's files
// (athletes.csv, nocs.csv, medallists.csv, teams.csv, events.csv).
func WithBundleDir(dir string) Option {
	return func(c *config) error {
		c.bundleDir = dir
		return nil
	}
}

// WithOutputDir sets the directory the merged tables are written to.
func WithOutputDir(dir string) Option {
	return func(c *config) error {
		c.outputDir = dir
		return nil
	}
}

// WithAliasFile installs a YAML country alias table, merged over the
// built-in aliases.
func WithAliasFile(path string) Option {
	return func(c *config) error {
		c.aliasFile = path
		return nil
	}
}

// WithEdition overrides the display name and identifier of the edition being
// merged.
func WithEdition(name, id string) Option {
	return func(c *config) error {
		c.edition = name
		c.editionID = id
		return nil
	}
}
