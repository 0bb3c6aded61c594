package frogger

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// World is an immutable snapshot of the game. Reduce never modifies a World
// or the slices it holds; it returns a new one.
type World struct {
	Time  int
	Actor Entity
	River Entity

	Vehicles         []Entity
	Platforms        []Entity
	CyclingPlatforms []Entity
	Goals            []Entity
	Collectibles     []Entity
	Retired          []Entity // Entities removed during the last tick

	Score           int
	HighScore       int
	SpawnCount      int
	GameOver        bool
	DifficultyLevel int
}

// Rules holds the static layout and tuning a World evolves under.
// A Rules value is read-only once built and safe for concurrent use.
type Rules struct {
	cfg config.FroggerConfig
}

// NewRules validates cfg and builds the rules for it.
func NewRules(cfg config.FroggerConfig) (*Rules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("frogger: %w", err)
	}
	return &Rules{cfg: cfg}, nil
}

// DefaultRules returns the rules for the default configuration.
func DefaultRules() *Rules {
	return &Rules{cfg: config.DefaultFroggerConfig()}
}

// Config returns the configuration the rules were built from.
func (r *Rules) Config() config.FroggerConfig {
	return r.cfg
}

// Width returns the playfield width.
func (r *Rules) Width() float64 { return r.cfg.Playfield.Width }

// Height returns the playfield height.
func (r *Rules) Height() float64 { return r.cfg.Playfield.Height }

// Cell returns the distance covered by one move.
func (r *Rules) Cell() float64 { return r.cfg.Playfield.Cell }

// NewWorld returns the initial world at time zero.
func (r *Rules) NewWorld() World {
	rv := r.cfg.River
	return World{
		Actor: r.newActor(0),
		River: Entity{
			ID: "river", X: rv.X, Y: rv.Y, Width: rv.Width, Height: rv.Height,
			Colour: rv.Colour,
		},
		Goals:           r.newGoals(0),
		Collectibles:    r.newCollectibles(0),
		DifficultyLevel: 1,
	}
}

// NewWorld returns the initial world under the default rules.
func NewWorld() World {
	return defaultRules.NewWorld()
}

func (r *Rules) newActor(time int) Entity {
	a := r.cfg.Actor
	return Entity{
		ID: "frog", X: a.X, Y: a.Y, Width: a.Width, Height: a.Height,
		Colour: a.Colour, CreateTime: time,
	}
}

func (r *Rules) newGoals(time int) []Entity {
	g := r.cfg.Goals
	goals := make([]Entity, g.Count)
	for i := range goals {
		goals[i] = Entity{
			ID:         "target" + strconv.Itoa(i+1),
			X:          g.X + float64(i)*(g.Width+g.Gap),
			Y:          g.Y,
			Width:      g.Width,
			Height:     g.Height,
			Colour:     g.Colour,
			CreateTime: time,
		}
	}
	return goals
}

func (r *Rules) newCollectibles(time int) []Entity {
	c := r.cfg.Collectibles
	coins := make([]Entity, len(c.Positions))
	for i, p := range c.Positions {
		coins[i] = Entity{
			ID:         "coin" + strconv.Itoa(i+1),
			X:          p.X + c.Inset,
			Y:          p.Y + c.Inset,
			Width:      c.Width,
			Height:     c.Height,
			Colour:     c.Colour,
			CreateTime: time,
		}
	}
	return coins
}

// Entities returns every entity of the world in draw order, back to front.
func (w World) Entities() []Entity {
	n := 1 + len(w.Platforms) + len(w.CyclingPlatforms) + len(w.Goals) +
		len(w.Vehicles) + len(w.Collectibles) + 1
	out := make([]Entity, 0, n)
	out = append(out, w.River)
	out = append(out, w.Platforms...)
	out = append(out, w.CyclingPlatforms...)
	out = append(out, w.Goals...)
	out = append(out, w.Vehicles...)
	out = append(out, w.Collectibles...)
	out = append(out, w.Actor)
	return out
}

// with returns a new slice holding s followed by e. s is never modified.
func with(s []Entity, e Entity) []Entity {
	out := make([]Entity, len(s), len(s)+1)
	copy(out, s)
	return append(out, e)
}

// without returns a new slice holding s minus the element at i.
func without(s []Entity, i int) []Entity {
	out := make([]Entity, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}
