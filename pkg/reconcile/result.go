package reconcile

// Confidence grades how an identifier was resolved. Exact matches used the
// full natural key; name matches fell back to name and nationality only and
// should be treated as lower-confidence links.
type Confidence int

const (
	// ConfidenceNone marks a resolution that matched nothing (minted).
	ConfidenceNone Confidence = iota
	// ConfidenceName marks a fallback match on name and NOC only.
	ConfidenceName
	// ConfidenceExact marks a full natural-key match.
	ConfidenceExact
)

// String returns the confidence grade's name.
func (c Confidence) String() string {
	switch c {
	case ConfidenceExact:
		return "exact"
	case ConfidenceName:
		return "name-only"
	default:
		return "none"
	}
}

// Resolution is the outcome of reconciling one incoming row: the identifier
// to use, whether it was minted, and which strategy produced it.
type Resolution struct {
	// ID is the identifier the incoming row must use.
	ID string

	// Minted reports that no existing identifier matched and a new one was
	// created (and registered, so later rows resolve to it).
	Minted bool

	// Confidence grades the match that produced the identifier.
	Confidence Confidence

	// Strategy names the matching tier that resolved the row, for reporting.
	Strategy string
}
