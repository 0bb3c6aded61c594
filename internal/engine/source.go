package engine

import (
	"sync"
	"time"
)

// TickSource emits a monotonically increasing tick counter.
type TickSource interface {
	// Ticks returns the channel ticks are delivered on.
	Ticks() <-chan int
	// Stop releases the source. It is safe to call more than once.
	Stop()
}

// Ticker is a TickSource driven by the wall clock. The first tick is 0.
// A slow consumer delays later ticks; none are dropped.
type Ticker struct {
	ch       chan int
	done     chan struct{}
	stopOnce sync.Once
}

// NewTicker starts a ticker firing every period.
func NewTicker(period time.Duration) *Ticker {
	t := &Ticker{
		ch:   make(chan int),
		done: make(chan struct{}),
	}
	go t.run(period)
	return t
}

func (t *Ticker) run(period time.Duration) {
	clock := time.NewTicker(period)
	defer clock.Stop()

	for n := 0; ; n++ {
		select {
		case <-clock.C:
		case <-t.done:
			return
		}
		select {
		case t.ch <- n:
		case <-t.done:
			return
		}
	}
}

// Ticks implements TickSource.
func (t *Ticker) Ticks() <-chan int {
	return t.ch
}

// Stop implements TickSource.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.done)
	})
}

// ManualSource is a TickSource advanced explicitly, for tests and replays.
type ManualSource struct {
	ch       chan int
	done     chan struct{}
	stopOnce sync.Once

	mu   sync.Mutex
	next int
}

// NewManualSource returns a source whose first tick is 0.
func NewManualSource() *ManualSource {
	return &ManualSource{
		ch:   make(chan int),
		done: make(chan struct{}),
	}
}

// Advance delivers the next n ticks, blocking until each is received.
// It returns early if the source is stopped.
func (m *ManualSource) Advance(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for range n {
		select {
		case m.ch <- m.next:
			m.next++
		case <-m.done:
			return
		}
	}
}

// Next returns the tick the next Advance will deliver first.
func (m *ManualSource) Next() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next
}

// Ticks implements TickSource.
func (m *ManualSource) Ticks() <-chan int {
	return m.ch
}

// Stop implements TickSource.
func (m *ManualSource) Stop() {
	m.stopOnce.Do(func() {
		close(m.done)
	})
}
