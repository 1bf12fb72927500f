package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/mossfell/mossfell/gamemath"
)

// MovementData is the player's desired world-space movement direction,
// recomputed from camera-relative input while grounded and zeroed once
// airborne.
type MovementData struct {
	Direction mgl64.Vec3
}

func (m *MovementData) IsMoving() bool {
	return !gamemath.IsZero(m.Direction)
}

var Movement = donburi.NewComponentType[MovementData]()
