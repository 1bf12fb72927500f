package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// OutsideForceData is an externally applied horizontal force such as
// knockback. Its presence on an entity alone enables its contribution;
// collaborators attach and remove it.
type OutsideForceData struct {
	Force mgl64.Vec3
}

var OutsideForce = donburi.NewComponentType[OutsideForceData]()
