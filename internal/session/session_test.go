package session

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/engine"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// waitWorld waits until the session publishes a world satisfying cond.
func waitWorld(t *testing.T, s *Session, cond func(frogger.World) bool) frogger.World {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		if w := s.World(); cond(w) {
			return w
		}
		select {
		case <-s.Updates():
		case <-timeout:
			t.Fatalf("timed out; last world %+v", s.World().Snapshot())
		}
	}
}

func startSession(t *testing.T, opts Options) (*Session, *engine.ManualSource) {
	t.Helper()
	src := engine.NewManualSource()
	opts.Source = src
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		src.Stop()
		s.Stop()
	})
	return s, src
}

func TestSessionMove(t *testing.T) {
	s, src := startSession(t, Options{Player: "alice", Throttle: -1})

	if err := s.Act(core.ActionUp); err != nil {
		t.Fatalf("Act: %v", err)
	}
	src.Advance(1)

	// The move was queued before tick 0, so it lands before that tick's spawns.
	w := waitWorld(t, s, func(w frogger.World) bool { return w.SpawnCount == 11 })
	if w.Actor.Y != 540 {
		t.Errorf("actor y = %g, want 540", w.Actor.Y)
	}
}

func TestSessionIgnoresShellActions(t *testing.T) {
	s, _ := startSession(t, Options{})
	for _, a := range []core.Action{core.ActionQuit, core.ActionHelp, core.ActionScoreboard} {
		if err := s.Act(a); err != nil {
			t.Errorf("Act(%v) = %v", a, err)
		}
	}
}

func TestSessionRecordsGameOver(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	cfg.Lanes = []config.LaneConfig{{
		Name: "blocker", Kind: config.LaneVehicle, Periods: []int{1000},
		X: 240, Y: 570, Width: 90, Height: 30, DX: 0, Colour: "red",
	}}
	rules, err := frogger.NewRules(cfg)
	if err != nil {
		t.Fatal(err)
	}
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	s, src := startSession(t, Options{Rules: rules, Store: store, Player: "bob"})

	src.Advance(2)
	waitWorld(t, s, func(w frogger.World) bool { return w.GameOver })

	run, ok := s.LastRun()
	if !ok {
		t.Fatal("no run recorded")
	}
	if run.Player != "bob" || run.Level != 1 {
		t.Errorf("run = %+v", run)
	}

	// Further ticks while game over do not record again.
	src.Advance(3)
	waitWorld(t, s, func(w frogger.World) bool { return w.Time == 4 })
	if n, _ := store.Count(); n != 1 {
		t.Errorf("runs = %d, want 1", n)
	}

	// Restarting into the blocker dies again: one more run.
	if err := s.Act(core.ActionRestart); err != nil {
		t.Fatal(err)
	}
	src.Advance(1)
	waitWorld(t, s, func(w frogger.World) bool { return w.Time == 5 && w.GameOver })
	if n, _ := store.Count(); n != 2 {
		t.Errorf("runs = %d, want 2", n)
	}
}

func TestThrottle(t *testing.T) {
	now := time.Unix(0, 0)
	th := NewThrottle(150 * time.Millisecond)
	th.now = func() time.Time { return now }

	steps := []struct {
		advance time.Duration
		action  core.Action
		want    bool
	}{
		{0, core.ActionUp, true},
		{50 * time.Millisecond, core.ActionUp, false},
		{0, core.ActionLeft, true}, // directions are independent
		{0, core.ActionRestart, true},
		{0, core.ActionRestart, false},
		{100 * time.Millisecond, core.ActionUp, true},
		{10 * time.Millisecond, core.ActionLeft, false},
		{0, core.ActionRestart, false},
		{50 * time.Millisecond, core.ActionRestart, true},
		{0, core.ActionHelp, true}, // shell actions pass through
		{0, core.ActionHelp, true},
	}
	for i, st := range steps {
		now = now.Add(st.advance)
		if got := th.Allow(st.action); got != st.want {
			t.Errorf("step %d: Allow(%v) = %v, want %v", i, st.action, got, st.want)
		}
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a, err := New(Options{Source: engine.NewManualSource()})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Options{Source: engine.NewManualSource()})
	if err != nil {
		t.Fatal(err)
	}

	r.Register(a)
	r.Register(b)
	if r.Count() != 2 {
		t.Errorf("Count = %d, want 2", r.Count())
	}
	if got, ok := r.Get(a.ID()); !ok || got != a {
		t.Error("Get did not return the registered session")
	}
	if ids := r.IDs(); len(ids) != 2 || ids[0] > ids[1] {
		t.Errorf("IDs = %v", ids)
	}

	r.Unregister(a.ID())
	if _, ok := r.Get(a.ID()); ok {
		t.Error("session still registered")
	}
}
