// Package session runs one player's game: an engine loop over the frogger
// reducer, input throttling and leaderboard bookkeeping. Shells (terminal,
// SSH, browser) drive a Session and render its published worlds.
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/engine"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// ID uniquely identifies a session.
type ID string

// NewID returns a fresh random session id.
func NewID() ID {
	return ID(uuid.NewString())
}

// Options configures a Session.
type Options struct {
	Rules  *frogger.Rules  // Defaults to frogger.DefaultRules()
	Policy *frogger.Policy // Defaults to the policy for Rules' lanes
	// Source drives the game. When nil the session runs a wall-clock ticker
	// at the configured tick rate and stops it on Stop.
	Source   engine.TickSource
	Store    *storage.Store // Optional leaderboard
	Player   string
	Logger   *log.Logger
	Throttle time.Duration // Per-direction move interval; zero uses the configured value, negative disables
}

// Session is one running game.
type Session struct {
	id       ID
	player   string
	rules    *frogger.Rules
	policy   *frogger.Policy
	store    *storage.Store
	logger   *log.Logger
	throttle *Throttle

	source    engine.TickSource
	ownSource bool
	loop      *engine.Loop[frogger.World, frogger.Event]
	latest    *engine.Latest[frogger.World]

	prev frogger.World // Loop goroutine only

	mu      sync.Mutex
	lastRun *storage.Run
}

// New builds a stopped session.
func New(opts Options) (*Session, error) {
	rules := opts.Rules
	if rules == nil {
		rules = frogger.DefaultRules()
	}
	policy := opts.Policy
	if policy == nil {
		p, err := frogger.NewPolicy(rules.Config().Lanes)
		if err != nil {
			return nil, err
		}
		policy = p
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	interval := opts.Throttle
	if interval == 0 {
		interval = rules.Config().Timing.MoveThrottle()
	}

	id := NewID()
	s := &Session{
		id:       id,
		player:   opts.Player,
		rules:    rules,
		policy:   policy,
		store:    opts.Store,
		logger:   logger.With("session", string(id)[:8]),
		throttle: NewThrottle(interval),
		source:   opts.Source,
		latest:   engine.NewLatest[frogger.World](),
	}
	if s.source == nil {
		s.source = engine.NewTicker(rules.Config().Timing.TickPeriod())
		s.ownSource = true
	}

	initial := rules.NewWorld()
	s.prev = initial
	s.latest.Publish(initial)
	s.loop = engine.New(engine.Config[frogger.World, frogger.Event]{
		Initial:    initial,
		Reduce:     rules.Reduce,
		TickEvents: policy.TickEvents,
		Source:     s.source,
		OnState:    s.observe,
		Logger:     s.logger,
	})
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() ID { return s.id }

// Player returns the player name runs are recorded under.
func (s *Session) Player() string { return s.player }

// Rules returns the rules the session plays under.
func (s *Session) Rules() *frogger.Rules { return s.rules }

// Store returns the leaderboard, which may be nil.
func (s *Session) Store() *storage.Store { return s.store }

// Start begins ticking.
func (s *Session) Start(ctx context.Context) error {
	if err := s.loop.Start(ctx); err != nil {
		return err
	}
	s.logger.Info("session started", "player", s.player)
	return nil
}

// Stop halts the game and releases an owned tick source.
func (s *Session) Stop() {
	s.loop.Stop()
	if s.ownSource {
		s.source.Stop()
	}
	s.logger.Info("session ended", "player", s.player, "score", s.loop.State().Score)
}

// Done returns a channel closed when the game loop exits.
func (s *Session) Done() <-chan struct{} {
	return s.loop.Done()
}

// Act applies a player action. Moves are throttled per direction and
// actions without a game meaning are ignored.
func (s *Session) Act(a core.Action) error {
	e, ok := s.rules.ActionEvent(a)
	if !ok || !s.throttle.Allow(a) {
		return nil
	}
	return s.loop.Submit(e)
}

// Updates signals when a new world has been published.
func (s *Session) Updates() <-chan struct{} {
	return s.latest.Updates()
}

// World returns the most recently published world.
func (s *Session) World() frogger.World {
	w, _ := s.latest.Load()
	return w
}

// LastRun returns the run recorded at the most recent game over.
func (s *Session) LastRun() (storage.Run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRun == nil {
		return storage.Run{}, false
	}
	return *s.lastRun, true
}

// observe runs on the loop goroutine after every state change.
func (s *Session) observe(w frogger.World) {
	prev := s.prev
	s.prev = w

	switch {
	case w.GameOver && !prev.GameOver:
		s.logger.Info("game over", "score", w.Score, "level", w.DifficultyLevel, "tick", w.Time)
		s.record(w)
	case prev.GameOver && !w.GameOver:
		s.logger.Info("restart", "high", w.HighScore)
	case w.DifficultyLevel > prev.DifficultyLevel:
		s.logger.Info("level up", "level", w.DifficultyLevel)
	case w.Score > prev.Score:
		s.logger.Debug("scored", "score", w.Score)
	}

	s.latest.Publish(w)
}

func (s *Session) record(w frogger.World) {
	if s.store == nil {
		return
	}
	run, err := s.store.SaveRun(s.player, w.Score, w.DifficultyLevel)
	if err != nil {
		s.logger.Error("failed to record run", "error", err)
		return
	}
	s.mu.Lock()
	s.lastRun = &run
	s.mu.Unlock()
}
