package viewmodel

import (
	"fmt"

	"github.com/estantelabs/estante/internal/model"
)

// StatsSummary is the display form of a statistics snapshot. The summary
// panel and the hero banner both read from one StatsSummary so the two
// regions can never drift apart.
type StatsSummary struct {
	TotalBooks   string
	TotalGenres  string
	TotalUsers   string
	TotalRatings string
	Local        bool
}

// NewStatsSummary formats a snapshot with locale-aware numbers. Local marks
// snapshots derived client-side after a failed fetch so views can show the
// offline notice.
func NewStatsSummary(s model.Statistics, local bool) StatsSummary {
	return StatsSummary{
		TotalBooks:   FormatNumber(s.TotalBooks),
		TotalGenres:  FormatNumber(s.TotalGenres),
		TotalUsers:   FormatNumber(s.TotalUsers),
		TotalRatings: FormatNumber(s.TotalRatings),
		Local:        local,
	}
}

// HeroLine is the banner rendition of the same figures.
func (s StatsSummary) HeroLine() string {
	return fmt.Sprintf("%s livros • %s usuários • %s avaliações",
		s.TotalBooks, s.TotalUsers, s.TotalRatings)
}
