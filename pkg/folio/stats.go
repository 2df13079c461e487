package folio

import (
	"strconv"
	"sync"

	"go.uber.org/atomic"
)

// SessionStats counts what happened during a run. The counters are written
// from the main loop and the dev watcher goroutine, so they are atomics;
// a snapshot is logged at shutdown.
type SessionStats struct {
	Navigations  atomic.Int64
	Transitions  atomic.Int64
	FormSubmits  atomic.Int64
	ContentLoads atomic.Int64

	mu     sync.Mutex
	visits map[string]int64
}

var sessionStats SessionStats

// Stats exposes the counters for the current run.
func Stats() *SessionStats {
	return &sessionStats
}

// CountVisit records one arrival at path.
func (s *SessionStats) CountVisit(path string) {
	s.mu.Lock()
	if s.visits == nil {
		s.visits = make(map[string]int64)
	}
	s.visits[path]++
	s.mu.Unlock()
}

// Visits returns a copy of the per-path visit counts.
func (s *SessionStats) Visits() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	visits := make(map[string]int64, len(s.visits))
	for path, count := range s.visits {
		visits[path] = count
	}
	return visits
}

// MostVisited returns the path with the highest visit count. Ties break
// toward the lexically smaller path so the answer is stable.
func (s *SessionStats) MostVisited() (string, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var best string
	var count int64
	for path, c := range s.visits {
		if c > count || (c == count && (best == "" || path < best)) {
			best = path
			count = c
		}
	}
	return best, count
}

// Snapshot returns the counters as log attributes.
func (s *SessionStats) Snapshot() []interface{} {
	return []interface{}{
		"navigations", s.Navigations.Load(),
		"transitions", s.Transitions.Load(),
		"form_submits", s.FormSubmits.Load(),
		"content_loads", s.ContentLoads.Load(),
		"visits", s.Visits(),
	}
}

// Reset zeroes every counter. Used between tests.
func (s *SessionStats) Reset() {
	s.Navigations.Store(0)
	s.Transitions.Store(0)
	s.FormSubmits.Store(0)
	s.ContentLoads.Store(0)
	s.mu.Lock()
	s.visits = nil
	s.mu.Unlock()
}

func formatCount(v int64) string {
	return strconv.FormatInt(v, 10)
}
