package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
)

// CreateInput spawns the logical input singleton.
func CreateInput(e *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(e)
	components.Input.SetValue(input, components.InputData{})
	return input
}
