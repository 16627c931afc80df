package component

import "time"

// SpawnTimer fires every Period of simulated time.
type SpawnTimer struct {
	Period  time.Duration
	Elapsed time.Duration
	Loop    bool
	Fired   int
}

var SpawnTimerComponent = NewComponent[SpawnTimer]()
