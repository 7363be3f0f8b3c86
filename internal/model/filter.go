package model

// FilterCriteria is the active catalog filter selection. An empty field
// matches unconditionally; a set field must equal the book's corresponding
// field exactly. The criteria value is owned by the state store and replaced
// wholesale on every filter-change event.
type FilterCriteria struct {
	Genre string
	Type  string
	Level string
}

// IsZero reports whether no criterion is set.
func (c FilterCriteria) IsZero() bool {
	return c.Genre == "" && c.Type == "" && c.Level == ""
}

// Matches reports whether the book satisfies every set criterion.
func (c FilterCriteria) Matches(b Book) bool {
	if c.Genre != "" && b.Genre != c.Genre {
		return false
	}
	if c.Type != "" && b.Type != c.Type {
		return false
	}
	if c.Level != "" && b.Level != c.Level {
		return false
	}
	return true
}
