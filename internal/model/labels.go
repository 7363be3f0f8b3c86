package model

// Fiction-type and reading-level values used by the backend. The server is
// authoritative for the taxonomy; these constants only exist so the client
// can offer sensible defaults and display labels. Unknown values pass through
// unchanged everywhere.
const (
	TypeFiction    = "ficcao"
	TypeNonFiction = "nao_ficcao"

	LevelBeginner     = "iniciante"
	LevelIntermediate = "intermediario"
	LevelAdvanced     = "avancado"
)

var typeLabels = map[string]string{
	TypeFiction:    "Ficção",
	TypeNonFiction: "Não-Ficção",
}

var levelLabels = map[string]string{
	LevelBeginner:     "Iniciante",
	LevelIntermediate: "Intermediário",
	LevelAdvanced:     "Avançado",
}

// TypeLabel returns the display label for a fiction-type key.
func TypeLabel(key string) string {
	if label, ok := typeLabels[key]; ok {
		return label
	}
	return key
}

// LevelLabel returns the display label for a reading-level key.
func LevelLabel(key string) string {
	if label, ok := levelLabels[key]; ok {
		return label
	}
	return key
}

// Types lists the fiction-type keys in their canonical display order.
func Types() []string {
	return []string{TypeFiction, TypeNonFiction}
}

// Levels lists the reading-level keys in their canonical display order.
func Levels() []string {
	return []string{LevelBeginner, LevelIntermediate, LevelAdvanced}
}
