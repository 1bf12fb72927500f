package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/mossfell/mossfell/gamemath"
)

// DriftData is a lateral velocity contribution written by collaborating
// mechanics (sliding, wind). The locomotion core only reads it.
type DriftData struct {
	Velocity mgl64.Vec3
}

func (d *DriftData) HasDrift() bool {
	return !gamemath.IsZero(d.Velocity)
}

var Drift = donburi.NewComponentType[DriftData]()
