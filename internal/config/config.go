// Package config provides YAML-based game configuration loading
// for the Frogger arcade game.
package config

import "time"

// Lane kinds.
const (
	LaneVehicle  = "vehicle"
	LanePlatform = "platform"
)

// VariantSubmersible tags platforms that periodically sink below the river.
const VariantSubmersible = "submersible"

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	Playfield    PlayfieldConfig    `yaml:"playfield"`
	Actor        ActorConfig        `yaml:"actor"`
	River        BoxConfig          `yaml:"river"`
	Goals        GoalsConfig        `yaml:"goals"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Scoring      ScoringConfig      `yaml:"scoring"`
	Cycling      CyclingConfig      `yaml:"cycling"`
	Timing       TimingConfig       `yaml:"timing"`
	Lanes        []LaneConfig       `yaml:"lanes"`
}

// PlayfieldConfig defines the world size in world units (pixels in the original board).
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Cell   float64 `yaml:"cell"` // One grid step; also the distance of a single move
}

// ActorConfig defines the player's start box.
type ActorConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Colour string  `yaml:"colour"`
}

// BoxConfig defines a static rectangular zone.
type BoxConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Colour string  `yaml:"colour"`
}

// GoalsConfig defines the row of goal slots at the top of the board.
type GoalsConfig struct {
	Count  int     `yaml:"count"`
	X      float64 `yaml:"x"` // Left edge of the first slot
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Gap    float64 `yaml:"gap"` // Space between neighbouring slots
	Colour string  `yaml:"colour"`
}

// CollectiblesConfig defines the bonus coins placed on the board.
type CollectiblesConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Inset     float64 `yaml:"inset"` // Offset applied to every position
	Colour    string  `yaml:"colour"`
	Positions []Point `yaml:"positions"`
}

// Point is a position on the board.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ScoringConfig defines score increments.
type ScoringConfig struct {
	Goal        int `yaml:"goal"`
	Collectible int `yaml:"collectible"`
}

// CyclingConfig defines the duty cycle of submersible platforms, in ticks.
type CyclingConfig struct {
	Period     int `yaml:"period"`
	Solid      int `yaml:"solid"`      // Ticks at the start of each period spent afloat
	Transition int `yaml:"transition"` // Ticks spent sinking (still collidable)
}

// TimingConfig defines the tick rate and input throttling.
type TimingConfig struct {
	TickRate       int `yaml:"tick_rate"`        // Ticks per second
	MoveThrottleMS int `yaml:"move_throttle_ms"` // Minimum interval between moves per direction
}

// LaneConfig defines one spawner lane.
type LaneConfig struct {
	Name         string  `yaml:"name"`
	Kind         string  `yaml:"kind"`    // "vehicle" or "platform"
	Periods      []int   `yaml:"periods"` // Lane fires when tick % period == 0 for any period
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	DX           float64 `yaml:"dx"`
	Colour       string  `yaml:"colour"`
	VariantEvery int     `yaml:"variant_every,omitempty"` // Emits Variant when tick % VariantEvery == 0
	Variant      string  `yaml:"variant,omitempty"`
}

// TickPeriod returns the real-time duration of one tick.
func (t TimingConfig) TickPeriod() time.Duration {
	if t.TickRate <= 0 {
		return 10 * time.Millisecond
	}
	return time.Second / time.Duration(t.TickRate)
}

// MoveThrottle returns the minimum interval between two moves in the same direction.
func (t TimingConfig) MoveThrottle() time.Duration {
	return time.Duration(t.MoveThrottleMS) * time.Millisecond
}
