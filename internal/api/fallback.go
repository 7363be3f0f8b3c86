package api

import "github.com/estantelabs/estante/internal/model"

// FallbackBooks returns the small bundled dataset used when the remote
// collection cannot be fetched and the caller's policy allows substitution.
// Substitution is always accompanied by a visible offline notice; the
// gateway itself never injects this data.
func FallbackBooks() []model.Book {
	return []model.Book{
		{
			ID:          1,
			Title:       "Como Treinar seu Dragão",
			Author:      "Cressida Cowell",
			Genre:       "aventura",
			Type:        model.TypeFiction,
			Level:       model.LevelBeginner,
			Year:        2003,
			Description: "As aventuras de um jovem viking que faz amizade com um dragão e desafia as tradições de seu povo.",
		},
		{
			ID:          2,
			Title:       "Cujo",
			Author:      "Stephen King",
			Genre:       "horror",
			Type:        model.TypeFiction,
			Level:       model.LevelIntermediate,
			Year:        1981,
			Description: "Um romance de terror sobre um São Bernardo raivoso que aterroriza uma pequena cidade.",
		},
	}
}
