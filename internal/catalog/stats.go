package catalog

import "github.com/estantelabs/estante/internal/model"

// Aggregate derives a Statistics snapshot from the loaded collection,
// reproducing the server's group-by-key counting. Used when the statistics
// endpoint is unreachable. User and rating totals are server-side figures
// with no local source and stay zero.
func Aggregate(books []model.Book) model.Statistics {
	stats := model.Statistics{
		Genres: make(map[string]int),
		Types:  make(map[string]int),
		Levels: make(map[string]int),
	}

	for _, b := range books {
		stats.Genres[b.Genre]++
		stats.Types[b.Type]++
		stats.Levels[b.Level]++
	}

	stats.TotalBooks = len(books)
	stats.TotalGenres = len(stats.Genres)

	return stats
}
