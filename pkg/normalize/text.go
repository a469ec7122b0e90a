package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	foldCaser  = cases.Fold()
	titleCaser = cases.Title(language.English)
)

// Key folds a free-text value into the form used for natural-key matching:
// case-folded, whitespace-collapsed, trimmed. Matching forms are never
// written to output tables.
func Key(s string) string {
	return strings.Join(strings.Fields(foldCaser.String(s)), " ")
}

// Display rewrites a free-text value into its display form: trimmed and
// title-cased. The incoming dataset carries athlete names in shouting case
// ("DUPONT Marie"), the base dataset in title case.
func Display(s string) string {
	return titleCaser.String(strings.TrimSpace(s))
}

// ReverseName rearranges a "Surname Given" name into "Given Surname".
// The incoming athlete file leads with the surname; the base dataset does not.
func ReverseName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return strings.TrimSpace(name)
	}
	return strings.Join(parts[1:], " ") + " " + parts[0]
}
