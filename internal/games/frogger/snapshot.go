package frogger

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot flattens a world into comparable fields for determinism testing
// and logging.
type Snapshot struct {
	Tick             int
	Score            int
	HighScore        int
	Level            int
	SpawnCount       int
	Vehicles         int
	Platforms        int
	CyclingPlatforms int
	Goals            int
	Collectibles     int
	Retired          int
	ActorX           float64
	ActorY           float64
	State            GameStateType
}

// Snapshot returns the world's snapshot.
func (w World) Snapshot() Snapshot {
	state := StatePlaying
	if w.GameOver {
		state = StateGameOver
	}
	return Snapshot{
		Tick:             w.Time,
		Score:            w.Score,
		HighScore:        w.HighScore,
		Level:            w.DifficultyLevel,
		SpawnCount:       w.SpawnCount,
		Vehicles:         len(w.Vehicles),
		Platforms:        len(w.Platforms),
		CyclingPlatforms: len(w.CyclingPlatforms),
		Goals:            len(w.Goals),
		Collectibles:     len(w.Collectibles),
		Retired:          len(w.Retired),
		ActorX:           w.Actor.X,
		ActorY:           w.Actor.Y,
		State:            state,
	}
}
