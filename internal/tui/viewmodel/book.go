package viewmodel

import (
	"fmt"

	"github.com/estantelabs/estante/internal/model"
)

// Placeholders match the original interface's wording.
const (
	unknownAuthor      = "Autor não informado"
	noDescription      = "Descrição não disponível."
	yearNotAvailable   = "N/A"
	descriptionMaxRune = 180
)

// BookCard is the display form of a catalog item.
type BookCard struct {
	ID          string
	Title       string
	Author      string
	Genre       string
	Type        string
	Level       string
	Year        string
	Description string
}

// NewBookCard builds a card from a book, substituting placeholders for
// absent optional fields.
func NewBookCard(b model.Book) BookCard {
	return BookCard{
		ID:          fmt.Sprintf("#%d", b.ID),
		Title:       b.Title,
		Author:      authorOrPlaceholder(b.Author),
		Genre:       b.Genre,
		Type:        model.TypeLabel(b.Type),
		Level:       b.Level,
		Year:        yearLabel(b.Year),
		Description: descriptionOrPlaceholder(b.Description),
	}
}

// NewBookCards maps a collection into cards, preserving order.
func NewBookCards(books []model.Book) []BookCard {
	cards := make([]BookCard, len(books))
	for i, b := range books {
		cards[i] = NewBookCard(b)
	}
	return cards
}

func authorOrPlaceholder(author string) string {
	if author == "" {
		return unknownAuthor
	}
	return author
}

func descriptionOrPlaceholder(desc string) string {
	if desc == "" {
		return noDescription
	}
	return desc
}

func yearLabel(y model.PublicationYear) string {
	if !y.Known() {
		return yearNotAvailable
	}
	return fmt.Sprintf("%d", int(y))
}

// TruncateDescription shortens a description for card display.
func TruncateDescription(desc string, max int) string {
	if max <= 0 {
		max = descriptionMaxRune
	}
	runes := []rune(desc)
	if len(runes) <= max {
		return desc
	}
	return string(runes[:max-1]) + "…"
}
