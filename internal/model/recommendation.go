package model

// Recommendation is a Book augmented with the similarity score the external
// recommender assigned to it for a given profile. Recommendation sets are
// ephemeral: each submission replaces the previous set.
type Recommendation struct {
	Book
	Score float64 `json:"score_similaridade"`
}
