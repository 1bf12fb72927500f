package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/mossfell/mossfell/physics"
)

// LevelData holds the loaded level geometry: the 3D boxes the camera ray
// queries, and the spawn point. The XZ collision footprints live in the
// resolv space (SpaceData); this core never inspects geometry beyond these
// two views.
type LevelData struct {
	Name  string
	Walls []physics.Box
	Spawn mgl64.Vec3
}

var Level = donburi.NewComponentType[LevelData]()
