package tui

import (
	"github.com/estantelabs/estante/internal/model"
)

// Data loading messages. Book and statistics loads carry the store
// generation issued when the fetch started; stale responses are discarded
// by the store.
type booksLoadedMsg struct {
	err   error
	books []model.Book
	gen   uint64
}

type statisticsLoadedMsg struct {
	err   error
	stats *model.Statistics
	gen   uint64
}

// recommendationsMsg carries the outcome of a profile-based request.
type recommendationsMsg struct {
	err     error
	profile model.UserProfile
	recs    []model.Recommendation
}

// profileRegisteredMsg reports the best-effort server-side registration.
type profileRegisteredMsg struct {
	err error
}

// healthMsg reports a service probe result.
type healthMsg struct {
	err error
}

// exportDoneMsg reports a chart export.
type exportDoneMsg struct {
	err   error
	paths []string
}

// clearNoticeMsg expires the transient status notice.
type clearNoticeMsg struct{}
