package tables

import "strings"

// Medal is the enumerated medal value carried by event result rows.
type Medal int

// Medal values. MedalNone is the explicit zero value: a row without a medal
// carries "None", never a blank field.
const (
	MedalNone Medal = iota
	MedalGold
	MedalSilver
	MedalBronze
)

// ParseMedal reads a raw medal field. The incoming data decorates values
// ("Gold Medal"), the base data does not ("Gold"); both parse. Anything
// unrecognized is MedalNone.
func ParseMedal(s string) Medal {
	switch {
	case strings.HasPrefix(s, "Gold"):
		return MedalGold
	case strings.HasPrefix(s, "Silver"):
		return MedalSilver
	case strings.HasPrefix(s, "Bronze"):
		return MedalBronze
	default:
		return MedalNone
	}
}

// String returns the canonical output form of the medal.
func (m Medal) String() string {
	switch m {
	case MedalGold:
		return "Gold"
	case MedalSilver:
		return "Silver"
	case MedalBronze:
		return "Bronze"
	default:
		return "None"
	}
}

// Pos returns the finishing position implied by the medal, or "" for none.
func (m Medal) Pos() string {
	switch m {
	case MedalGold:
		return "1"
	case MedalSilver:
		return "2"
	case MedalBronze:
		return "3"
	default:
		return ""
	}
}

// Won reports whether the value is an actual medal.
func (m Medal) Won() bool {
	return m != MedalNone
}
