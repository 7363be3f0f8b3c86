package model

// UserProfile holds the reading preferences submitted through the profile
// form. It lives only for the duration of a recommendation request and is
// never persisted.
type UserProfile struct {
	Name  string `json:"nome"            validate:"required"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	Age   int    `json:"idade,omitempty" validate:"omitempty,gte=0,lte=150"`
	Genre string `json:"genero"          validate:"required"`
	Type  string `json:"tipo"            validate:"required"`
	Level string `json:"nivel"           validate:"required"`
}

// RecommendationQuery is the request payload for the profile-based
// recommendation endpoint.
type RecommendationQuery struct {
	Genre string `json:"genero"`
	Type  string `json:"tipo"`
	Level string `json:"nivel"`
	TopN  int    `json:"top_n"`
}

// DefaultTopN matches the result count the original interface requests.
const DefaultTopN = 6

// Query builds the recommendation request for this profile. A non-positive
// topN falls back to DefaultTopN.
func (p UserProfile) Query(topN int) RecommendationQuery {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return RecommendationQuery{
		Genre: p.Genre,
		Type:  p.Type,
		Level: p.Level,
		TopN:  topN,
	}
}
