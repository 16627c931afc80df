package component

// Input stores the cursor-key state sampled for an entity this frame.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

var InputComponent = NewComponent[Input]()
