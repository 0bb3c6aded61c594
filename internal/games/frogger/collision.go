package frogger

// firstOverlap returns the index of the first entity overlapping actor, or -1.
func firstOverlap(actor Entity, es []Entity) int {
	for i, e := range es {
		if actor.Overlaps(e) {
			return i
		}
	}
	return -1
}

// standingOn returns the platform carrying the actor, if any.
// Plain platforms take precedence over cycling ones; a cycling platform
// carries only while solid.
func (r *Rules) standingOn(w World) (Entity, bool) {
	if i := firstOverlap(w.Actor, w.Platforms); i >= 0 {
		return w.Platforms[i], true
	}
	for _, p := range w.CyclingPlatforms {
		if r.PhaseAt(p.CreateTime, w.Time).Collidable() && w.Actor.Overlaps(p) {
			return p, true
		}
	}
	return Entity{}, false
}

// resolve applies the actor's collisions against the post-motion world.
func (r *Rules) resolve(w World) World {
	actor := w.Actor

	if firstOverlap(actor, w.Vehicles) >= 0 {
		w.GameOver = true
		w.Actor.Velocity = Velocity{}
		return w
	}

	platform, onPlatform := r.standingOn(w)
	goal := firstOverlap(actor, w.Goals)
	if actor.Overlaps(w.River) && !onPlatform && goal < 0 {
		w.GameOver = true
		w.Actor.Velocity = Velocity{}
		return w
	}

	retired := w.Retired
	switch {
	case goal >= 0:
		retired = with(retired, w.Goals[goal])
		w.Goals = without(w.Goals, goal)
		w.Score += r.cfg.Scoring.Goal
		w.Actor = r.newActor(w.Time)
	case onPlatform:
		w.Actor.Velocity = platform.Velocity
	default:
		w.Actor.Velocity = Velocity{}
	}

	// Coins are matched against the actor's position before any goal reset.
	if i := firstOverlap(actor, w.Collectibles); i >= 0 {
		retired = with(retired, w.Collectibles[i])
		w.Collectibles = without(w.Collectibles, i)
		w.Score += r.cfg.Scoring.Collectible
	}
	w.Retired = retired
	return w
}
