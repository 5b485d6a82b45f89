package menu

import "strings"

// ResolutionKind is the outcome class of a canteen lookup.
type ResolutionKind int

const (
	// Matched means exactly one canteen was selected.
	Matched ResolutionKind = iota
	// Ambiguous means the query matched several canteens; Candidates lists
	// them for display.
	Ambiguous
	// NotFound means the query matched nothing (or was empty).
	NotFound
)

// Resolution is the tagged result of Resolve. Callers switch on Kind;
// Name is set only for Matched, Candidates only for Ambiguous.
type Resolution struct {
	Kind       ResolutionKind
	Name       string
	Candidates []string
}

// Resolve picks a canteen for a user query, case-insensitively:
// an exact name match wins, otherwise a substring match that hits exactly
// one name, otherwise the query is ambiguous or not found.
//
// There is deliberately no scoring or edit distance. Canteen name sets are
// small and stable, and a silent wrong guess is worse than asking the user
// to disambiguate. Ties on exact matches follow the order of available, so
// callers should pass names sorted.
func Resolve(query string, available []string) Resolution {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Resolution{Kind: NotFound}
	}

	for _, name := range available {
		if strings.ToLower(name) == q {
			return Resolution{Kind: Matched, Name: name}
		}
	}

	var hits []string
	for _, name := range available {
		if strings.Contains(strings.ToLower(name), q) {
			hits = append(hits, name)
		}
	}

	switch len(hits) {
	case 0:
		return Resolution{Kind: NotFound}
	case 1:
		return Resolution{Kind: Matched, Name: hits[0]}
	default:
		return Resolution{Kind: Ambiguous, Candidates: hits}
	}
}
