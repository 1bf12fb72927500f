package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
	"github.com/mossfell/mossfell/leveldata"
)

// CreateSpace builds the ground-plane collision space sized to the level.
// Resolv cells are one world unit.
func CreateSpace(e *ecs.ECS, lvl *leveldata.Level) *resolv.Space {
	space := resolv.NewSpace(int(lvl.Width)+1, int(lvl.Depth)+1, 1, 1)
	spaceEntry := archetypes.Space.Spawn(e)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})
	return space
}
