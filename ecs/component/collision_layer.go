package component

// Collision categories. Masks are built from these bits.
const (
	LayerPlayer uint32 = 1 << iota
	LayerPlatform
	LayerCollectible
	LayerBounds
)

// CollisionLayer controls which physics shapes may touch.
type CollisionLayer struct {
	Category uint32
	Mask     uint32
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
