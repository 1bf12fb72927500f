package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the singleton frame clock. Delta is the simulated frame time
// in seconds; every system reads it instead of wall time so tests can drive
// arbitrary delta sequences.
type ClockData struct {
	Delta float64
}

func (c *ClockData) DeltaDuration() time.Duration {
	return time.Duration(c.Delta * float64(time.Second))
}

var Clock = donburi.NewComponentType[ClockData]()
