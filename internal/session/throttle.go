package session

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Throttle limits how often each move direction and restart is accepted.
// Each action is throttled independently; other actions pass through.
type Throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last map[core.Action]time.Time
}

// NewThrottle returns a throttle accepting each throttled action once per interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		now:      time.Now,
		last:     make(map[core.Action]time.Time),
	}
}

// Allow reports whether the action may be applied now and, if so, records it.
func (t *Throttle) Allow(a core.Action) bool {
	if !throttled(a) || t.interval <= 0 {
		return true
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if last, ok := t.last[a]; ok && now.Sub(last) < t.interval {
		return false
	}
	t.last[a] = now
	return true
}

func throttled(a core.Action) bool {
	return a.IsMove() || a == core.ActionRestart
}
