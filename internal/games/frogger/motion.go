package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Phase is the state of a cycling platform within its duty cycle.
type Phase int

const (
	PhaseSolid     Phase = iota // Afloat
	PhaseSinking                // Going under, no longer collidable
	PhaseSubmerged              // Under water, not collidable
)

func (p Phase) String() string {
	switch p {
	case PhaseSolid:
		return "solid"
	case PhaseSinking:
		return "sinking"
	case PhaseSubmerged:
		return "submerged"
	default:
		return "unknown"
	}
}

// Collidable reports whether the actor can stand on a platform in this phase.
// Only a solid platform carries; a sinking one already lets the actor drown.
func (p Phase) Collidable() bool {
	return p == PhaseSolid
}

// Colour returns the display tag for the phase.
func (p Phase) Colour() string {
	switch p {
	case PhaseSolid:
		return "lightgreen"
	case PhaseSinking:
		return "yellow"
	default:
		return ColourTransparent
	}
}

// PhaseAt returns the phase of a cycling platform created at createTime, at world time t.
func (r *Rules) PhaseAt(createTime, t int) Phase {
	c := r.cfg.Cycling
	p := (t - createTime) % c.Period
	if p < 0 {
		p += c.Period
	}
	switch {
	case p < c.Solid:
		return PhaseSolid
	case p < c.Solid+c.Transition:
		return PhaseSinking
	default:
		return PhaseSubmerged
	}
}

// step runs the motion and lifecycle stage of a tick. It moves everything,
// retires entities that left the board and, while playing, refills the goals.
func (r *Rules) step(w World, t int) World {
	level := w.DifficultyLevel
	width := r.Width()

	var retired []Entity
	advance := func(in []Entity) []Entity {
		out := make([]Entity, 0, len(in))
		for _, e := range in {
			if e.Expired(width) {
				retired = append(retired, e)
				continue
			}
			out = append(out, e.Advanced(level))
		}
		return out
	}

	w.Time = t
	w.Vehicles = advance(w.Vehicles)
	w.Platforms = advance(w.Platforms)
	cycling := advance(w.CyclingPlatforms)
	for i := range cycling {
		cycling[i].Colour = r.PhaseAt(cycling[i].CreateTime, t).Colour()
	}
	w.CyclingPlatforms = cycling
	w.Retired = retired

	if !w.GameOver && len(w.Goals) == 0 {
		w.Goals = r.newGoals(t)
		w.DifficultyLevel++
	}

	// Carried actor stays on the board.
	actor := w.Actor.Advanced(level)
	actor.X = core.ClampF(actor.X, 0, width-actor.Width)
	w.Actor = actor
	return w
}
