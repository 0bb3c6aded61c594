package core

// RuntimeConfig contains configuration passed to shells at initialization.
type RuntimeConfig struct {
	ScreenW int // Terminal width in characters
	ScreenH int // Terminal height in characters
}
