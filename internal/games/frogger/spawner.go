package frogger

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

// Lane is one validated spawner lane.
type Lane struct {
	Name         string
	Platform     bool
	Periods      []int
	Spec         SpawnSpec
	VariantEvery int
	Variant      Variant
}

// Fires reports whether the lane spawns at tick t.
func (l Lane) Fires(t int) bool {
	for _, p := range l.Periods {
		if t%p == 0 {
			return true
		}
	}
	return false
}

// Event returns the spawn command the lane emits at tick t.
func (l Lane) Event(t int) Event {
	spec := l.Spec
	if l.VariantEvery > 0 && t%l.VariantEvery == 0 {
		spec.Variant = l.Variant
	}
	if l.Platform {
		return SpawnPlatform{Spec: spec}
	}
	return SpawnVehicle{Spec: spec}
}

// Policy decides which entities to spawn on each tick. It holds no state:
// the same tick always yields the same commands.
type Policy struct {
	lanes []Lane
}

// NewPolicy builds a policy from lane definitions, rejecting malformed ones.
func NewPolicy(lanes []config.LaneConfig) (*Policy, error) {
	p := &Policy{lanes: make([]Lane, 0, len(lanes))}
	for i, lc := range lanes {
		lane, err := newLane(lc)
		if err != nil {
			return nil, fmt.Errorf("frogger: lane %d (%s): %w", i, lc.Name, err)
		}
		p.lanes = append(p.lanes, lane)
	}
	return p, nil
}

// DefaultPolicy returns the policy for the default lane table.
func DefaultPolicy() *Policy {
	p, err := NewPolicy(config.DefaultFroggerConfig().Lanes)
	if err != nil {
		panic(err)
	}
	return p
}

func newLane(lc config.LaneConfig) (Lane, error) {
	var platform bool
	switch lc.Kind {
	case config.LaneVehicle:
	case config.LanePlatform:
		platform = true
	default:
		return Lane{}, fmt.Errorf("unknown kind %q", lc.Kind)
	}
	if len(lc.Periods) == 0 {
		return Lane{}, errors.New("no periods")
	}
	for _, p := range lc.Periods {
		if p <= 0 {
			return Lane{}, fmt.Errorf("non-positive period %d", p)
		}
	}
	if lc.Width <= 0 || lc.Height <= 0 {
		return Lane{}, fmt.Errorf("non-positive size %gx%g", lc.Width, lc.Height)
	}
	if lc.VariantEvery < 0 {
		return Lane{}, fmt.Errorf("negative variant_every %d", lc.VariantEvery)
	}
	variant := Variant(lc.Variant)
	if lc.VariantEvery > 0 && (!platform || variant != VariantSubmersible) {
		return Lane{}, fmt.Errorf("variant %q not allowed on %s lane", lc.Variant, lc.Kind)
	}

	return Lane{
		Name:     lc.Name,
		Platform: platform,
		Periods:  append([]int(nil), lc.Periods...),
		Spec: SpawnSpec{
			X:      lc.X,
			Y:      lc.Y,
			Width:  lc.Width,
			Height: lc.Height,
			DX:     lc.DX,
			Colour: lc.Colour,
		},
		VariantEvery: lc.VariantEvery,
		Variant:      variant,
	}, nil
}

// Lanes returns a copy of the policy's lanes.
func (p *Policy) Lanes() []Lane {
	return append([]Lane(nil), p.lanes...)
}

// Events returns the spawn commands for tick t, at most one per lane, in lane order.
func (p *Policy) Events(t int) []Event {
	var events []Event
	for _, l := range p.lanes {
		if l.Fires(t) {
			events = append(events, l.Event(t))
		}
	}
	return events
}

// TickEvents returns the full event batch for tick t: the Tick itself
// followed by that tick's spawn commands.
func (p *Policy) TickEvents(t int) []Event {
	spawns := p.Events(t)
	events := make([]Event, 0, len(spawns)+1)
	events = append(events, Tick{Time: t})
	return append(events, spawns...)
}
