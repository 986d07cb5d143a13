package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per key.
type Store interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// MemoryStore is a sliding window limiter held in process memory.
type MemoryStore struct {
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
	mu       sync.Mutex
}

// NewMemoryStore allows limit requests per key in any window.
func NewMemoryStore(limit int, window time.Duration) *MemoryStore {
	return &MemoryStore{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow records a request for key unless the window is already full.
func (s *MemoryStore) Allow(_ context.Context, key string) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	valid := s.live(key, now)

	d := Decision{Limit: s.limit}
	if len(valid) >= s.limit {
		s.requests[key] = valid
		d.ResetAt = resetAt(valid, now, s.window)
		return d, nil
	}

	valid = append(valid, now)
	s.requests[key] = valid
	d.Allowed = true
	d.Remaining = s.limit - len(valid)
	d.ResetAt = resetAt(valid, now, s.window)
	return d, nil
}

// live returns the timestamps of key still inside the window. Caller holds mu.
func (s *MemoryStore) live(key string, now time.Time) []time.Time {
	cutoff := now.Add(-s.window)
	var valid []time.Time
	for _, t := range s.requests[key] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	return valid
}

// resetAt is when the oldest live request leaves the window.
func resetAt(valid []time.Time, now time.Time, window time.Duration) time.Time {
	if len(valid) == 0 {
		return now
	}
	return valid[0].Add(window)
}

// Reset clears the counter for key.
func (s *MemoryStore) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.requests, key)
}

// Len reports how many keys are tracked.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Cleanup removes expired entries to prevent memory leaks
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key := range s.requests {
		valid := s.live(key, now)
		if len(valid) == 0 {
			delete(s.requests, key)
		} else {
			s.requests[key] = valid
		}
	}
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (s *MemoryStore) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Cleanup()
			}
		}
	}()
}
