package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty store, got %d", high)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 runs, got %d", n)
	}

	runs, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs, got %d", len(runs))
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	saves := []struct {
		player string
		score  int
		level  int
	}{
		{"alice", 1100, 1},
		{"bob", 5200, 2},
		{"alice", 300, 1},
		{"carol", 5200, 2},
	}
	for _, s := range saves {
		run, err := store.SaveRun(s.player, s.score, s.level)
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		if _, err := uuid.Parse(run.RunID); err != nil {
			t.Errorf("RunID %q is not a uuid: %v", run.RunID, err)
		}
	}

	runs, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Ties keep insertion order.
	want := []string{"bob", "carol", "alice"}
	for i, r := range runs {
		if r.Player != want[i] {
			t.Errorf("runs[%d].Player = %s, want %s", i, r.Player, want[i])
		}
	}
	if !runs[0].CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", runs[0].CreatedAt, fixed)
	}
	if runs[0].Level != 2 {
		t.Errorf("Level = %d, want 2", runs[0].Level)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 5200 {
		t.Errorf("Expected high score 5200, got %d", high)
	}

	best, err := store.PlayerBest("alice")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 1100 {
		t.Errorf("Expected alice best 1100, got %d", best)
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	if n != 4 {
		t.Errorf("Expected 4 runs, got %d", n)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun("", 700, 1)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.Player != "anonymous" {
		t.Errorf("Player = %q, want anonymous", saved.Player)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil || got.Score != 700 || got.ID != saved.ID {
		t.Errorf("RunByID() = %+v, want %+v", got, saved)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown run, got %+v", missing)
	}
}

func TestStoresAreIsolated(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.SaveRun("alice", 100, 1); err != nil {
		t.Fatal(err)
	}
	n, err := b.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("second store sees %d runs from the first", n)
	}
}
