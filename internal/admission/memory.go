package admission

import (
	"context"
	"numberbot/pkg/domain"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type memoryEntry struct {
	minute *rate.Limiter
	day    int
}

// memoryLimiter keeps per user state in process. The per minute cap is a
// token bucket refilled at PerMinute tokens per minute; daily counts are
// dropped when the day changes.
type memoryLimiter struct {
	options Options

	mu      sync.Mutex
	today   string
	entries map[domain.UserID]*memoryEntry
}

// NewMemory creates a Limiter for single instance deployments.
func NewMemory(options Options) Limiter {
	return &memoryLimiter{
		options: options.withDefaults(),
		entries: make(map[domain.UserID]*memoryEntry),
	}
}

func (l *memoryLimiter) Allow(_ context.Context, userID domain.UserID) error {
	now := l.options.Now()
	today := now.In(l.options.Location).Format(time.DateOnly)

	l.mu.Lock()
	defer l.mu.Unlock()

	if today != l.today {
		l.today = today
		clear(l.entries)
	}

	entry, ok := l.entries[userID]
	if !ok {
		entry = &memoryEntry{}
		if l.options.PerMinute > 0 {
			entry.minute = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.options.PerMinute)), l.options.PerMinute)
		}
		l.entries[userID] = entry
	}

	if l.options.PerDay > 0 && entry.day >= l.options.PerDay {
		return dailyLimited(l.options.PerDay)
	}
	if entry.minute != nil && !entry.minute.AllowN(now, 1) {
		return minuteLimited(l.options.PerMinute)
	}

	entry.day++

	return nil
}
