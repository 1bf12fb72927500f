package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
	"github.com/mossfell/mossfell/leveldata"
	"github.com/mossfell/mossfell/physics"
	"github.com/mossfell/mossfell/tags"
)

// CreateLevel turns parsed level data into the two geometry views the core
// consumes: 3D boxes for the camera ray and resolv footprints for the
// ground-plane collision. Sensor walls get a box (rays skip them by
// filter) but no collision footprint.
func CreateLevel(e *ecs.ECS, lvl *leveldata.Level, space *resolv.Space) *donburi.Entry {
	boxes := make([]physics.Box, 0, len(lvl.Walls))
	for _, w := range lvl.Walls {
		box := physics.NewBox(
			mgl64.Vec3{w.X, 0, w.Z},
			mgl64.Vec3{w.W, w.Height, w.D},
		)
		box.Sensor = w.Sensor
		boxes = append(boxes, box)

		if w.Sensor {
			continue
		}
		obj := resolv.NewObject(w.X, w.Z, w.W, w.D)
		obj.AddTags(tags.ResolvSolid)
		wallEntry := archetypes.Wall.Spawn(e)
		components.Object.SetValue(wallEntry, components.ObjectData{Object: obj})
		if space != nil {
			space.Add(obj)
		}
	}

	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{
		Name:  lvl.Name,
		Walls: boxes,
		Spawn: mgl64.Vec3{lvl.Spawn.X, 0, lvl.Spawn.Z},
	})
	return entry
}
