package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/tags"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Movement,
		components.Momentum,
		components.Drift,
		components.Velocity,
		components.PlayerSpeed,
		components.Object,
	)
	Camera = newArchetype(
		tags.MainCamera,
		components.Transform,
		components.CameraController,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Space = newArchetype(
		components.Space,
	)
	Input = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Clock = newArchetype(
		components.Clock,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
