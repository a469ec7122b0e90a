package reconcile

import (
	"github.com/podiumlabs/podium/pkg/constants"
	"github.com/podiumlabs/podium/pkg/errors"
	"github.com/podiumlabs/podium/pkg/normalize"
)

// CountryQuery is the natural key of one incoming country row.
type CountryQuery struct {
	Code string // NOC code carried by the incoming row
	Name string // display name carried by the incoming row
}

// ResolveCountry maps an incoming country row onto an existing NOC code.
// Matching tiers, in order: the incoming code itself; the normalized display
// name; the alias table (alternate spellings of the stored name). When
// nothing matches, the incoming code becomes the new identifier: country
// identifiers are namespaced by the NOC authority, so minting reuses the
// given code rather than inventing one.
func (ix *Index) ResolveCountry(q CountryQuery) (Resolution, error) {
	if q.Code == "" && normalize.Key(q.Name) == "" {
		return Resolution{}, errors.NewMissingNaturalKeyError(constants.TableCountry, q.Name)
	}

	if code, ok := ix.countryByCode[q.Code]; ok && q.Code != "" {
		return Resolution{ID: code, Confidence: ConfidenceExact, Strategy: "code"}, nil
	}

	key := normalize.Key(q.Name)
	if code, ok := ix.countryByName[key]; ok && key != "" {
		return Resolution{ID: code, Confidence: ConfidenceExact, Strategy: "name"}, nil
	}

	if canonical, ok := ix.aliases.Resolve(q.Name); ok {
		if code, found := ix.countryByName[normalize.Key(canonical)]; found {
			return Resolution{ID: code, Confidence: ConfidenceName, Strategy: "alias"}, nil
		}
	}

	if q.Code == "" {
		return Resolution{}, errors.NewMissingNaturalKeyError(constants.TableCountry, q.Name)
	}

	ix.registerCountry(q.Code, q.Name)
	return Resolution{ID: q.Code, Minted: true, Confidence: ConfidenceNone, Strategy: "mint"}, nil
}
