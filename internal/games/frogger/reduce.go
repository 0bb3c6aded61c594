package frogger

import (
	"strconv"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

var defaultRules = DefaultRules()

// Reduce applies e to w under the default rules.
func Reduce(w World, e Event) World {
	return defaultRules.Reduce(w, e)
}

// Reduce returns the world that follows w after e. It is pure and total:
// events that do not apply leave the world unchanged.
func (r *Rules) Reduce(w World, e Event) World {
	switch e := e.(type) {
	case Move:
		return r.move(w, e)
	case Tick:
		return r.tick(w, e.Time)
	case SpawnVehicle:
		return r.spawn(w, e.Spec, false)
	case SpawnPlatform:
		return r.spawn(w, e.Spec, true)
	case Restart:
		return r.restart(w)
	default:
		return w
	}
}

// ReduceAll folds events into w in order.
func (r *Rules) ReduceAll(w World, events []Event) World {
	for _, e := range events {
		w = r.Reduce(w, e)
	}
	return w
}

func (r *Rules) move(w World, m Move) World {
	if w.GameOver {
		return w
	}
	box := w.Actor.Box().Translate(m.DX, m.DY)
	if !box.Within(r.Width(), r.Height()) {
		return w
	}
	w.Actor.X = box.X
	w.Actor.Y = box.Y
	return w
}

func (r *Rules) tick(w World, t int) World {
	w.Retired = nil
	w = r.step(w, t)
	if w.GameOver {
		return w
	}
	return r.resolve(w)
}

func (r *Rules) spawn(w World, spec SpawnSpec, platform bool) World {
	if !spec.valid() {
		return w
	}
	prefix := "car"
	switch {
	case platform && spec.Variant == VariantSubmersible:
		prefix = "turtle"
	case platform:
		prefix = "plank"
	}
	e := Entity{
		ID:         prefix + strconv.Itoa(w.SpawnCount),
		X:          spec.X,
		Y:          spec.Y,
		Width:      spec.Width,
		Height:     spec.Height,
		Velocity:   Velocity{DX: spec.DX},
		Colour:     spec.Colour,
		CreateTime: w.Time,
	}
	w.SpawnCount++

	switch prefix {
	case "car":
		w.Vehicles = with(w.Vehicles, e)
	case "turtle":
		e.Colour = r.PhaseAt(e.CreateTime, w.Time).Colour()
		w.CyclingPlatforms = with(w.CyclingPlatforms, e)
	default:
		w.Platforms = with(w.Platforms, e)
	}
	return w
}

func (r *Rules) restart(w World) World {
	if !w.GameOver {
		return w
	}
	w.Actor = r.newActor(w.Time)
	w.GameOver = false
	w.HighScore = max(w.HighScore, w.Score)
	w.Score = 0
	w.Goals = r.newGoals(w.Time)
	w.Collectibles = r.newCollectibles(w.Time)
	w.DifficultyLevel = 1
	return w
}

// ActionEvent maps a shell action to a reducer event. Actions that are not
// game inputs report false.
func (r *Rules) ActionEvent(a core.Action) (Event, bool) {
	cell := r.Cell()
	switch a {
	case core.ActionUp:
		return Move{DY: -cell}, true
	case core.ActionDown:
		return Move{DY: cell}, true
	case core.ActionLeft:
		return Move{DX: -cell}, true
	case core.ActionRight:
		return Move{DX: cell}, true
	case core.ActionRestart:
		return Restart{}, true
	default:
		return nil, false
	}
}
