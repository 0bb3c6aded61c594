package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default Frogger configuration.
// It mirrors defaults/frogger.yaml and is used when the embedded file cannot be parsed.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Playfield: PlayfieldConfig{Width: 600, Height: 600, Cell: 30},
		Actor:     ActorConfig{X: 270, Y: 570, Width: 30, Height: 30, Colour: "green"},
		River:     BoxConfig{X: -300, Y: 0, Width: 1200, Height: 270, Colour: "aqua"},
		Goals: GoalsConfig{
			Count:  5,
			X:      30,
			Y:      0,
			Width:  80,
			Height: 90,
			Gap:    35,
			Colour: "DarkSeaGreen",
		},
		Collectibles: CollectiblesConfig{
			Width:  20,
			Height: 20,
			Inset:  5,
			Colour: "gold",
			Positions: []Point{
				{0, 570}, {30, 570}, {60, 570}, {90, 570}, {120, 570},
				{0, 270}, {60, 240}, {120, 210}, {180, 180}, {240, 150},
				{300, 120}, {360, 90}, {420, 120}, {450, 150}, {480, 180},
				{540, 210}, {60, 570}, {120, 570}, {180, 570}, {240, 570},
			},
		},
		Scoring: ScoringConfig{Goal: 1000, Collectible: 100},
		Cycling: CyclingConfig{Period: 600, Solid: 300, Transition: 40},
		Timing:  TimingConfig{TickRate: 100, MoveThrottleMS: 150},
		Lanes: []LaneConfig{
			{Name: "road-1", Kind: LaneVehicle, Periods: []int{100, 170}, X: -90, Y: 510, Width: 90, Height: 30, DX: 3, Colour: "red"},
			{Name: "road-2", Kind: LaneVehicle, Periods: []int{300}, X: -50, Y: 480, Width: 50, Height: 30, DX: 6, Colour: "purple"},
			{Name: "road-3", Kind: LaneVehicle, Periods: []int{400}, X: 600, Y: 450, Width: 100, Height: 30, DX: -4, Colour: "pink"},
			{Name: "road-4", Kind: LaneVehicle, Periods: []int{270, 320}, X: -50, Y: 390, Width: 50, Height: 30, DX: 1, Colour: "pink"},
			{Name: "road-5", Kind: LaneVehicle, Periods: []int{270, 320}, X: 600, Y: 360, Width: 60, Height: 30, DX: -1, Colour: "HotPink"},
			{Name: "river-1", Kind: LanePlatform, Periods: []int{100}, X: -120, Y: 240, Width: 120, Height: 30, DX: 3, Colour: "brown"},
			{Name: "river-2", Kind: LanePlatform, Periods: []int{400}, X: 600, Y: 210, Width: 180, Height: 30, DX: -2, Colour: "brown"},
			{Name: "river-3", Kind: LanePlatform, Periods: []int{100}, X: -60, Y: 180, Width: 60, Height: 30, DX: 1, Colour: "lightgreen", VariantEvery: 400, Variant: VariantSubmersible},
			{Name: "river-4", Kind: LanePlatform, Periods: []int{400}, X: -210, Y: 150, Width: 210, Height: 30, DX: 1.5, Colour: "brown"},
			{Name: "river-5", Kind: LanePlatform, Periods: []int{100}, X: 600, Y: 120, Width: 120, Height: 30, DX: -3, Colour: "brown"},
			{Name: "river-6", Kind: LanePlatform, Periods: []int{400}, X: -210, Y: 90, Width: 210, Height: 30, DX: 1, Colour: "brown"},
		},
	}
}
