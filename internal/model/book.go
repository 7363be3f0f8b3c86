// Package model defines the core domain types shared across the application.
package model

import (
	"strconv"

	"github.com/goccy/go-json"
)

// Book represents a single catalog item as served by the backend.
// Books are immutable on the client: collections are replaced wholesale
// on each successful fetch, never merged or mutated in place.
type Book struct {
	ID          int             `json:"id"`
	Title       string          `json:"titulo"`
	Author      string          `json:"autor,omitempty"`
	Genre       string          `json:"genero"`
	Type        string          `json:"tipo"`
	Level       string          `json:"nivel"`
	Year        PublicationYear `json:"ano_publicacao,omitempty"`
	Description string          `json:"descricao,omitempty"`
}

// PublicationYear tolerates the backend's habit of sending either a number
// or the literal string "N/A" when the year is unknown. Unknown decodes as 0.
type PublicationYear int

// UnmarshalJSON accepts a JSON number or any string; non-numeric strings
// decode as zero rather than failing the whole payload.
func (y *PublicationYear) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*y = PublicationYear(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*y = 0
		return nil
	}
	*y = PublicationYear(n)
	return nil
}

// Known returns true when the publication year was provided by the server.
func (y PublicationYear) Known() bool {
	return y != 0
}
