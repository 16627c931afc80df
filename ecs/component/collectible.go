package component

// Collectible marks a falling pickup worth Points.
type Collectible struct {
	Points int
	// Bounce is assigned at spawn time and mirrored onto the shape elasticity.
	// Collectibles only ever touch the player, so it never changes a trajectory.
	Bounce float64
}

var CollectibleComponent = NewComponent[Collectible]()

// Disabled removes an entity from simulation and rendering without destroying it.
type Disabled struct{}

var DisabledComponent = NewComponent[Disabled]()
