package component

// LevelBounds stores the world-space bounds bodies may be clamped to.
type LevelBounds struct {
	Width  float64
	Height float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
