// Package ratelimit bounds how often one chat session may start a turn.
package ratelimit

import (
	"sync"
	"time"
)

type Limiter struct {
	sessions map[string]time.Time
	mu       sync.Mutex
	limit    time.Duration
}

func New(limit time.Duration) *Limiter {
	return &Limiter{
		sessions: make(map[string]time.Time),
		limit:    limit,
	}
}

// Allow records and permits a turn unless the session used one within the
// limit window.
func (l *Limiter) Allow(sessionID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	last, seen := l.sessions[sessionID]
	if !seen || time.Since(last) >= l.limit {
		l.sessions[sessionID] = time.Now()
		return true
	}
	return false
}

// Wait reports how long until the session may start its next turn.
func (l *Limiter) Wait(sessionID string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	last, seen := l.sessions[sessionID]
	if !seen {
		return 0
	}
	elapsed := time.Since(last)
	if elapsed >= l.limit {
		return 0
	}
	return l.limit - elapsed
}

func (l *Limiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for id, last := range l.sessions {
		if now.Sub(last) > l.limit*2 {
			delete(l.sessions, id)
		}
	}
}

// StartCleanup evicts stale sessions in the background.
func (l *Limiter) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			l.cleanup()
		}
	}()
}
