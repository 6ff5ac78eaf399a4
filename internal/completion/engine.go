// Package completion narrows the rows of a control to the ones whose search
// token contains the typed query.
package completion

import (
	"strings"

	"golang.org/x/text/cases"

	"kanacombo/internal/rows"
)

// Filter returns the indices of rows whose search token contains query,
// ignoring case, in row order. Rows without a token (headers, the
// placeholder, history rows) never match.
func Filter(rs []rows.Row, query string) []int {
	fold := cases.Fold()
	q := fold.String(query)

	var matches []int
	for i, r := range rs {
		token := r.SearchToken()
		if token == "" {
			continue
		}
		if strings.Contains(fold.String(token), q) {
			matches = append(matches, i)
		}
	}
	return matches
}
