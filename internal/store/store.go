// Package store holds the client-side application state: the loaded book
// collection, the active filter selection, the latest statistics snapshot,
// and the current profile with its recommendations. The store is the single
// source of truth for rendering; renderers and the filter engine only read
// from it.
package store

import (
	"sync"

	"github.com/estantelabs/estante/internal/model"
)

// Store is safe for concurrent use. Fetch commands run on their own
// goroutines, so every accessor takes the lock even though applications
// built on a single event loop would not strictly need it.
//
// Racing fetches are resolved with a generation counter: BeginBooksLoad
// hands out a ticket, and CompleteBooksLoad only applies a result carrying
// the latest ticket. The last-issued intent wins, not the last response to
// arrive.
type Store struct {
	mu sync.RWMutex

	books    []model.Book
	criteria model.FilterCriteria

	stats   *model.Statistics
	profile *model.UserProfile
	recs    []model.Recommendation

	booksGen uint64
	statsGen uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// BeginBooksLoad registers a new fetch intent and returns its generation.
func (s *Store) BeginBooksLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booksGen++
	return s.booksGen
}

// CompleteBooksLoad replaces the collection wholesale if gen is still the
// latest issued intent. Returns false for stale responses, which callers
// must discard.
func (s *Store) CompleteBooksLoad(gen uint64, books []model.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.booksGen {
		return false
	}
	s.books = books
	return true
}

// Books returns the current collection. Callers treat it as read-only.
func (s *Store) Books() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.books
}

// HasBooks reports whether a collection has been loaded.
func (s *Store) HasBooks() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books) > 0
}

// SetCriteria replaces the active filter selection wholesale.
func (s *Store) SetCriteria(criteria model.FilterCriteria) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = criteria
}

// Criteria returns the active filter selection.
func (s *Store) Criteria() model.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// BeginStatsLoad registers a new statistics fetch intent.
func (s *Store) BeginStatsLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statsGen++
	return s.statsGen
}

// CompleteStatsLoad applies a statistics snapshot if gen is current.
func (s *Store) CompleteStatsLoad(gen uint64, stats *model.Statistics) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.statsGen {
		return false
	}
	s.stats = stats
	return true
}

// Statistics returns the latest snapshot, or nil when none has loaded.
func (s *Store) Statistics() *model.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// SetProfile stores the profile whose recommendations are being displayed.
func (s *Store) SetProfile(profile model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = &profile
}

// Profile returns the displayed profile, or nil before the first submission.
func (s *Store) Profile() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SetRecommendations replaces the recommendation set wholesale.
func (s *Store) SetRecommendations(recs []model.Recommendation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = recs
}

// Recommendations returns the current recommendation set.
func (s *Store) Recommendations() []model.Recommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recs
}
