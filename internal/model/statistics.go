package model

// Statistics is an aggregate snapshot of the catalog. The server produces
// it; on failure the client derives an approximation from the loaded
// collection (see catalog.Aggregate). User and rating totals only exist
// server-side and stay zero in locally derived snapshots.
type Statistics struct {
	TotalBooks   int            `json:"total_livros"`
	TotalGenres  int            `json:"total_generos"`
	TotalUsers   int            `json:"total_usuarios,omitempty"`
	TotalRatings int            `json:"total_avaliacoes,omitempty"`
	Genres       map[string]int `json:"generos"`
	Types        map[string]int `json:"tipos"`
	Levels       map[string]int `json:"niveis"`
}

// Empty reports whether the snapshot carries no distribution data at all.
func (s Statistics) Empty() bool {
	return len(s.Genres) == 0 && len(s.Types) == 0 && len(s.Levels) == 0
}
