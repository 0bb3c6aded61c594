package frogger

// Event is an input to Reduce. The set of events is closed.
type Event interface {
	frogEvent()
}

// Move asks to translate the actor by (DX, DY).
type Move struct {
	DX, DY float64
}

func (Move) frogEvent() {}

// Tick advances the world to Time.
type Tick struct {
	Time int
}

func (Tick) frogEvent() {}

// SpawnVehicle appends a new vehicle.
type SpawnVehicle struct {
	Spec SpawnSpec
}

func (SpawnVehicle) frogEvent() {}

// SpawnPlatform appends a new platform, or a cycling platform when the spec
// carries the submersible variant.
type SpawnPlatform struct {
	Spec SpawnSpec
}

func (SpawnPlatform) frogEvent() {}

// Restart starts a new run after game over.
type Restart struct{}

func (Restart) frogEvent() {}

// Variant tags a spawned platform with special behaviour.
type Variant string

const (
	VariantNone        Variant = ""
	VariantSubmersible Variant = "submersible"
)

// SpawnSpec describes an entity to be created by the reducer.
type SpawnSpec struct {
	X, Y    float64
	Width   float64
	Height  float64
	DX      float64
	Colour  string
	Variant Variant
}

func (s SpawnSpec) valid() bool {
	return s.Width > 0 && s.Height > 0
}
