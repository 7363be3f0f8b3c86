// Package catalog contains the pure, I/O-free logic over a loaded book
// collection: filtering and local statistics aggregation.
package catalog

import (
	"sort"

	"github.com/estantelabs/estante/internal/model"
)

// Filter returns the books matching criteria. The filter is stable: input
// order is preserved and the input slice is never modified. Empty criteria
// return a copy of the full collection.
func Filter(books []model.Book, criteria model.FilterCriteria) []model.Book {
	filtered := make([]model.Book, 0, len(books))
	for _, b := range books {
		if criteria.Matches(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

// Options holds the selectable filter values derived from a collection.
// Genres come from the data itself; types and levels use the canonical
// orderings so the selection order stays stable across fetches.
type Options struct {
	Genres []string
	Types  []string
	Levels []string
}

// DeriveOptions builds filter options from the loaded collection. Genres are
// the distinct values present, sorted alphabetically.
func DeriveOptions(books []model.Book) Options {
	seen := make(map[string]struct{})
	var genres []string
	for _, b := range books {
		if _, ok := seen[b.Genre]; ok {
			continue
		}
		seen[b.Genre] = struct{}{}
		genres = append(genres, b.Genre)
	}
	sort.Strings(genres)

	return Options{
		Genres: genres,
		Types:  model.Types(),
		Levels: model.Levels(),
	}
}
