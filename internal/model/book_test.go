package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicationYear_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    PublicationYear
	}{
		{name: "number", payload: `{"ano_publicacao": 1981}`, want: 1981},
		{name: "numeric string", payload: `{"ano_publicacao": "2003"}`, want: 2003},
		{name: "not available marker", payload: `{"ano_publicacao": "N/A"}`, want: 0},
		{name: "absent", payload: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Book
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &b))
			assert.Equal(t, tt.want, b.Year)
			assert.Equal(t, tt.want != 0, b.Year.Known())
		})
	}
}

func TestFilterCriteria_Matches(t *testing.T) {
	book := Book{ID: 1, Genre: "horror", Type: TypeFiction, Level: LevelIntermediate}

	tests := []struct {
		name     string
		criteria FilterCriteria
		want     bool
	}{
		{name: "empty criteria match anything", criteria: FilterCriteria{}, want: true},
		{name: "matching genre", criteria: FilterCriteria{Genre: "horror"}, want: true},
		{name: "mismatched genre", criteria: FilterCriteria{Genre: "fantasia"}, want: false},
		{name: "all fields match", criteria: FilterCriteria{Genre: "horror", Type: TypeFiction, Level: LevelIntermediate}, want: true},
		{name: "one field mismatched fails", criteria: FilterCriteria{Genre: "horror", Level: LevelBeginner}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(book))
		})
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Ficção", TypeLabel(TypeFiction))
	assert.Equal(t, "Não-Ficção", TypeLabel(TypeNonFiction))
	assert.Equal(t, "Iniciante", LevelLabel(LevelBeginner))
	// Unknown taxonomy values pass through; the server is authoritative.
	assert.Equal(t, "poesia", TypeLabel("poesia"))
	assert.Equal(t, "mestre", LevelLabel("mestre"))
}
