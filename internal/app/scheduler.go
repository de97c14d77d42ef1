package app

import (
	"sync"
	"time"
)

type timerKey struct {
	userID int64
	pollID string
}

// Scheduler owns the pending timeout timers, keyed by (user, poll) so an
// applied answer can cancel exactly its own timer. A timer that fires after
// cancellation does nothing.
type Scheduler struct {
	mu     sync.Mutex
	timers map[timerKey]*time.Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[timerKey]*time.Timer)}
}

// Schedule runs fn after d unless the key is cancelled first. Scheduling the
// same key twice replaces the earlier timer.
func (s *Scheduler) Schedule(userID int64, pollID string, d time.Duration, fn func()) {
	key := timerKey{userID: userID, pollID: pollID}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(d, func() {
		s.mu.Lock()
		if s.timers[key] != timer {
			s.mu.Unlock()
			return
		}
		delete(s.timers, key)
		s.mu.Unlock()
		fn()
	})
	s.timers[key] = timer
}

// Cancel drops the pending timer for the key, if any.
func (s *Scheduler) Cancel(userID int64, pollID string) {
	key := timerKey{userID: userID, pollID: pollID}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
}

// CancelUser drops every pending timer belonging to the user; used when the
// session is replaced so stale timers cannot touch its successor.
func (s *Scheduler) CancelUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, t := range s.timers {
		if key.userID == userID {
			t.Stop()
			delete(s.timers, key)
		}
	}
}

// Stop cancels every pending timer; used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}
