package common

const (
	// BaseWidth and BaseHeight size the game container.
	BaseWidth  = 800
	BaseHeight = 600
	// HostBarHeight is the strip below the container holding the host UI.
	HostBarHeight = 72
)
