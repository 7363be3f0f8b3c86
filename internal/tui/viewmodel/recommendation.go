package viewmodel

import (
	"fmt"
	"math"

	"github.com/estantelabs/estante/internal/model"
)

// RecommendationCard is the display form of a scored recommendation.
type RecommendationCard struct {
	BookCard
	ScorePercent int
	ScoreLabel   string
	// ScoreRatio stays in [0,1] for proportional bar rendering.
	ScoreRatio float64
}

// NewRecommendationCard builds a card with the similarity score rendered
// as a rounded percentage.
func NewRecommendationCard(r model.Recommendation) RecommendationCard {
	pct := ScorePercent(r.Score)
	return RecommendationCard{
		BookCard:     NewBookCard(r.Book),
		ScorePercent: pct,
		ScoreLabel:   fmt.Sprintf("%d%%", pct),
		ScoreRatio:   clampRatio(r.Score),
	}
}

// NewRecommendationCards maps a recommendation set into cards, preserving
// the server's ranking order.
func NewRecommendationCards(recs []model.Recommendation) []RecommendationCard {
	cards := make([]RecommendationCard, len(recs))
	for i, r := range recs {
		cards[i] = NewRecommendationCard(r)
	}
	return cards
}

// ScorePercent converts a similarity score in [0,1] to a rounded percentage.
func ScorePercent(score float64) int {
	return int(math.Round(clampRatio(score) * 100))
}

func clampRatio(score float64) float64 {
	switch {
	case score < 0 || math.IsNaN(score):
		return 0
	case score > 1:
		return 1
	default:
		return score
	}
}
