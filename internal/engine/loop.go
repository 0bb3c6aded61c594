// Package engine runs a reducer against a tick source and asynchronous
// input, folding everything through a single goroutine that owns the state.
package engine

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	// ErrRunning is returned by Start when the loop is already running.
	ErrRunning = errors.New("engine: loop already running")
	// ErrNotRunning is returned by Submit when the loop is stopped.
	ErrNotRunning = errors.New("engine: loop not running")
	// ErrInputFull is returned by Submit when the input buffer is full.
	ErrInputFull = errors.New("engine: input buffer full")
)

const defaultInputBuffer = 64

// Config wires a Loop.
type Config[S, E any] struct {
	Initial    S
	Reduce     func(S, E) S
	TickEvents func(tick int) []E // Events applied for each tick, in order
	Source     TickSource         // Owned by the caller; Stop does not stop it
	OnState    func(S)            // Called from the loop goroutine after every change
	Logger     *log.Logger
	// InputBuffer is the number of inputs that may wait between ticks.
	InputBuffer int
}

// Loop is a started-and-stopped scheduler around a pure reducer.
// Inputs submitted before a tick arrives are applied before that tick.
type Loop[S, E any] struct {
	cfg    Config[S, E]
	logger *log.Logger
	inputs chan E

	mu       sync.RWMutex
	state    S
	running  bool
	done     chan struct{}
	stopOnce *sync.Once
	finished chan struct{}
}

// New creates a stopped loop holding cfg.Initial.
func New[S, E any](cfg Config[S, E]) *Loop[S, E] {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	size := cfg.InputBuffer
	if size <= 0 {
		size = defaultInputBuffer
	}
	return &Loop[S, E]{
		cfg:    cfg,
		logger: logger,
		inputs: make(chan E, size),
		state:  cfg.Initial,
	}
}

// Start launches the loop goroutine. The loop runs until Stop is called,
// ctx is cancelled or the tick source closes its channel. A stopped loop
// may be started again and resumes from its last state.
func (l *Loop[S, E]) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running {
		return ErrRunning
	}
	l.running = true
	l.done = make(chan struct{})
	l.stopOnce = &sync.Once{}
	l.finished = make(chan struct{})

	go l.run(ctx, l.done, l.finished)
	l.logger.Debug("engine started")
	return nil
}

// Stop halts the loop and waits for its goroutine to exit.
// Calling Stop on a stopped loop is a no-op.
func (l *Loop[S, E]) Stop() {
	l.mu.RLock()
	done, once, finished := l.done, l.stopOnce, l.finished
	l.mu.RUnlock()

	if once == nil {
		return
	}
	once.Do(func() {
		close(done)
	})
	<-finished
}

// Done returns a channel closed when the current run ends.
// It returns nil before the first Start.
func (l *Loop[S, E]) Done() <-chan struct{} {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.finished
}

// Running reports whether the loop goroutine is active.
func (l *Loop[S, E]) Running() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.running
}

// Submit queues an input event without blocking.
func (l *Loop[S, E]) Submit(e E) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !l.running {
		return ErrNotRunning
	}
	select {
	case l.inputs <- e:
		return nil
	default:
		return ErrInputFull
	}
}

// State returns the most recent state.
func (l *Loop[S, E]) State() S {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}

func (l *Loop[S, E]) run(ctx context.Context, done, finished chan struct{}) {
	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
		close(finished)
		l.logger.Debug("engine stopped")
	}()

	ticks := l.cfg.Source.Ticks()
	state := l.State()

	for {
		select {
		case e := <-l.inputs:
			state = l.apply(state, e)
			l.publish(state)

		case t, ok := <-ticks:
			if !ok {
				return
			}
			state = l.drain(state)
			for _, e := range l.cfg.TickEvents(t) {
				state = l.apply(state, e)
			}
			l.publish(state)

		case <-done:
			return

		case <-ctx.Done():
			return
		}
	}
}

// drain applies every queued input.
func (l *Loop[S, E]) drain(state S) S {
	for {
		select {
		case e := <-l.inputs:
			state = l.apply(state, e)
		default:
			return state
		}
	}
}

func (l *Loop[S, E]) apply(state S, e E) S {
	return l.cfg.Reduce(state, e)
}

func (l *Loop[S, E]) publish(state S) {
	l.mu.Lock()
	l.state = state
	l.mu.Unlock()

	if l.cfg.OnState != nil {
		l.cfg.OnState(state)
	}
}
