package web

import (
	"slices"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

// EntityView is how the browser sees an entity.
type EntityView struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Colour string  `json:"colour"`
}

// Frame is one world pushed to the browser. The client creates or updates
// every entity in Upserts and deletes every id in Removed.
type Frame struct {
	Tick      int          `json:"tick"`
	Upserts   []EntityView `json:"upserts"`
	Removed   []string     `json:"removed"`
	Score     int          `json:"score"`
	HighScore int          `json:"highScore"`
	Level     int          `json:"level"`
	GameOver  bool         `json:"gameOver"`
}

// frameBuilder remembers which ids the client holds so entities that
// vanished between two sent frames are removed too.
type frameBuilder struct {
	shown map[string]struct{}
}

func newFrameBuilder() *frameBuilder {
	return &frameBuilder{shown: make(map[string]struct{})}
}

// Next builds the frame for w and records its ids as shown.
func (b *frameBuilder) Next(w frogger.World) Frame {
	entities := w.Entities()
	f := Frame{
		Tick:      w.Time,
		Upserts:   make([]EntityView, 0, len(entities)),
		Removed:   []string{},
		Score:     w.Score,
		HighScore: w.HighScore,
		Level:     w.DifficultyLevel,
		GameOver:  w.GameOver,
	}

	current := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		current[e.ID] = struct{}{}
		f.Upserts = append(f.Upserts, EntityView{
			ID:     e.ID,
			X:      e.X,
			Y:      e.Y,
			W:      e.Width,
			H:      e.Height,
			Colour: e.Colour,
		})
	}

	// A retired id can come straight back (goals regenerate with the same ids).
	removed := make(map[string]struct{})
	for _, e := range w.Retired {
		if _, ok := current[e.ID]; !ok {
			removed[e.ID] = struct{}{}
		}
	}
	for id := range b.shown {
		if _, ok := current[id]; !ok {
			removed[id] = struct{}{}
		}
	}
	for id := range removed {
		f.Removed = append(f.Removed, id)
	}
	slices.Sort(f.Removed)

	b.shown = current
	return f
}
