// Package constants provides shared constants used throughout the podium codebase.
// This includes the canonical date layout, the Paris 2024 edition fixups, file
// permissions, and other values that must stay consistent across the pipeline.
package constants

// Date layout constants define the canonical text forms used across tables
const (
	// DateLayout is the canonical date form used in all cleaned tables (dd-Mon-yyyy)
	DateLayout = "02-Jan-2006"

	// DateRangeSeparator joins the two halves of a competition date range
	DateRangeSeparator = " to "
)

// Paris 2024 edition constants. The base games table carries placeholder
// dates for the edition being integrated, so these values are authoritative.
const (
	// ParisEditionID is the edition_id of the 2024 Summer Olympics in the base games table
	ParisEditionID = "63"

	// ParisEditionName is the display name of the 2024 Summer Olympics
	ParisEditionName = "2024 Summer Olympics"

	// ParisStartDate is the opening date of the Paris 2024 games
	ParisStartDate = "26-Jul-2024"

	// ParisEndDate is the closing date of the Paris 2024 games
	ParisEndDate = "11-Aug-2024"

	// ParisCompetitionDate is the competition date range of the Paris 2024 games
	ParisCompetitionDate = "24-Jul-2024 to 11-Aug-2024"
)

// Table name constants identify the canonical tables in errors and reports
const (
	// TableAthlete is the athlete biography table
	TableAthlete = "athlete"

	// TableCountry is the NOC/country table
	TableCountry = "country"

	// TableGames is the games edition table
	TableGames = "games"

	// TableEventResult is the athlete event result table
	TableEventResult = "event_result"

	// TableTally is the derived medal tally table
	TableTally = "medal_tally"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
