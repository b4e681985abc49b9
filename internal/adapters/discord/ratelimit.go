package discord

import (
	"sync"
	"time"
)

// userLimiter deja pasar a cada usuario como mucho una vez por ventana.
type userLimiter struct {
	mu   sync.Mutex
	next map[string]time.Time
	win  time.Duration
	now  func() time.Time
}

func newUserLimiter(window time.Duration) *userLimiter {
	return &userLimiter{next: map[string]time.Time{}, win: window, now: time.Now}
}

func (l *userLimiter) Allow(userID string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()
	if until, ok := l.next[userID]; ok && now.Before(until) {
		return false
	}
	l.next[userID] = now.Add(l.win)
	if len(l.next) > 1024 {
		l.sweep(now)
	}
	return true
}

// sweep saca las ventanas vencidas para que el mapa no crezca sin límite.
func (l *userLimiter) sweep(now time.Time) {
	for id, until := range l.next {
		if !now.Before(until) {
			delete(l.next, id)
		}
	}
}
