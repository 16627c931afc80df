package component

// Player holds the tunables read by the player controller.
type Player struct {
	MoveSpeed float64
	JumpSpeed float64
}

var PlayerComponent = NewComponent[Player]()
