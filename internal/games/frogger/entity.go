// Package frogger implements the Frogger game as a pure reducer over an
// immutable World. Shells feed it events and render the resulting states.
package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// ColourTransparent is the display tag of a submerged platform.
const ColourTransparent = "transparent"

// Velocity is a per-tick displacement before difficulty scaling.
type Velocity struct {
	DX, DY float64
}

// Entity is an immutable rectangular game object.
type Entity struct {
	ID         string
	X, Y       float64 // Top-left corner
	Width      float64
	Height     float64
	Velocity   Velocity
	Colour     string // Display tag, no gameplay effect
	CreateTime int    // World time at which the entity was created
}

// Box returns the entity's bounding box.
func (e Entity) Box() core.Box {
	return core.NewBox(e.X, e.Y, e.Width, e.Height)
}

// Overlaps reports whether two entities' boxes intersect.
func (e Entity) Overlaps(other Entity) bool {
	return e.Box().Intersects(other.Box())
}

// Advanced returns the entity moved by its velocity scaled by level.
func (e Entity) Advanced(level int) Entity {
	e.X += e.Velocity.DX * float64(level)
	e.Y += e.Velocity.DY * float64(level)
	return e
}

// Expired reports whether the entity has scrolled fully off a board of the given width.
func (e Entity) Expired(screenWidth float64) bool {
	return e.X < -e.Width || e.X > screenWidth
}
