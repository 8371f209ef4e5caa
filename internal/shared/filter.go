package shared

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterAll is the sentinel value for an unset enumerated filter; it always
// passes.
const FilterAll = "All"

// MatchesQuery reports whether any of the candidate fields contains the
// search term as a case-folded substring. An empty term matches everything.
// A fresh caser per call: cases.Caser is not safe for concurrent use.
func MatchesQuery(term string, fields ...string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	fold := cases.Fold()
	folded := fold.String(term)
	for _, field := range fields {
		if strings.Contains(fold.String(field), folded) {
			return true
		}
	}
	return false
}

// MatchesChoice reports whether the field equals the selected enumerated
// filter value. The FilterAll sentinel (or an empty selection) always passes.
func MatchesChoice(selected, field string) bool {
	if selected == "" || selected == FilterAll {
		return true
	}
	return selected == field
}
