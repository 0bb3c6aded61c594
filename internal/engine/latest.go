package engine

import "sync"

// Latest holds the most recent value published to it. Readers that fall
// behind skip straight to the newest value.
type Latest[S any] struct {
	mu     sync.Mutex
	value  S
	has    bool
	notify chan struct{}
}

// NewLatest returns an empty Latest.
func NewLatest[S any]() *Latest[S] {
	return &Latest[S]{notify: make(chan struct{}, 1)}
}

// Publish replaces the held value and wakes a waiting reader.
func (l *Latest[S]) Publish(v S) {
	l.mu.Lock()
	l.value = v
	l.has = true
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

// Updates returns a channel that receives after each Publish.
// Several publishes between reads are coalesced into one signal.
func (l *Latest[S]) Updates() <-chan struct{} {
	return l.notify
}

// Load returns the held value and whether anything was published yet.
func (l *Latest[S]) Load() (S, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.value, l.has
}
