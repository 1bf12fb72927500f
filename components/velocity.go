package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// VelocityData is the linear velocity handed to the physics integrator.
// The velocity composer owns the horizontal components; the integrator
// owns the vertical one (gravity, jump arcs).
type VelocityData struct {
	Linear mgl64.Vec3
}

var Velocity = donburi.NewComponentType[VelocityData]()
