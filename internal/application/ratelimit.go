package application

import (
	"fmt"
	"sync"
	"time"
)

// SubmissionWindow is the per-(user, form) throttle state. The window resets
// once more than the window duration has elapsed since WindowStart.
type SubmissionWindow struct {
	Count          int
	WindowStart    time.Time
	LastSubmission time.Time
}

// RateLimitStore abstracts the throttle state so a multi-process deployment
// can back it with a shared, expiring store. The in-memory default only
// covers a single process.
type RateLimitStore interface {
	Get(key string) (SubmissionWindow, bool)
	Put(key string, w SubmissionWindow)
}

type memoryRateLimitStore struct {
	mu      sync.Mutex
	entries map[string]SubmissionWindow
}

func NewMemoryRateLimitStore() RateLimitStore {
	return &memoryRateLimitStore{entries: make(map[string]SubmissionWindow)}
}

func (s *memoryRateLimitStore) Get(key string) (SubmissionWindow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.entries[key]
	return w, ok
}

func (s *memoryRateLimitStore) Put(key string, w SubmissionWindow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = w
}

const (
	submissionCooldown = 30 * time.Second
	submissionWindow   = time.Hour
	maxPerWindow       = 5
)

type RateLimiter struct {
	store RateLimitStore
	now   func() time.Time
	mu    sync.Mutex
}

func NewRateLimiter(store RateLimitStore) *RateLimiter {
	return &RateLimiter{store: store, now: time.Now}
}

// Check evaluates the throttle for one submission attempt and registers it
// when allowed. It returns every violated rule, not just the first.
func (l *RateLimiter) Check(userID, formID uint) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := fmt.Sprintf("%d:%d", userID, formID)
	now := l.now()

	w, ok := l.store.Get(key)
	if ok && now.Sub(w.WindowStart) > submissionWindow {
		w = SubmissionWindow{}
		ok = false
	}

	var violations []string
	if ok && w.Count > 0 {
		if since := now.Sub(w.LastSubmission); since < submissionCooldown {
			wait := (submissionCooldown - since).Round(time.Second)
			violations = append(violations,
				fmt.Sprintf("please wait %s before submitting again", wait))
		}
		if w.Count >= maxPerWindow {
			violations = append(violations,
				fmt.Sprintf("submission limit reached (%d per hour)", maxPerWindow))
		}
	}

	if len(violations) > 0 {
		return violations
	}

	if w.Count == 0 {
		w.WindowStart = now
	}
	w.Count++
	w.LastSubmission = now
	l.store.Put(key, w)
	return nil
}
