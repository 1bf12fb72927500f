package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/tags"
)

// CreatePlayer spawns the single controllable character at position,
// grounded. Every locomotion system assumes exactly one player, so a
// second spawn is a programming error.
func CreatePlayer(e *ecs.ECS, position mgl64.Vec3, space *resolv.Space) *donburi.Entry {
	if _, ok := tags.Player.First(e.World); ok {
		panic("player already exists; the locomotion core assumes a single player")
	}

	player := archetypes.Player.Spawn(e)
	components.Transform.SetValue(player, components.NewTransform(position))
	components.Movement.SetValue(player, components.MovementData{})
	components.Momentum.SetValue(player, components.MomentumData{})
	components.Drift.SetValue(player, components.DriftData{})
	components.Velocity.SetValue(player, components.VelocityData{})
	components.PlayerSpeed.SetValue(player, components.NewPlayerSpeed(components.PlayerSpeedConfig{
		BaseSpeed:    cfg.Player.BaseSpeed,
		CrawlSpeed:   cfg.Player.CrawlSpeed,
		BaseTopSpeed: cfg.Player.BaseTopSpeed,
		Acceleration: cfg.Player.Acceleration,
		Deceleration: cfg.Player.Deceleration,
		AccelWarmup:  cfg.Player.AccelWarmup,
		DecelWarmup:  cfg.Player.DecelWarmup,
	}))

	obj := resolv.NewObject(
		position.X()-cfg.Player.ColliderWidth/2,
		position.Z()-cfg.Player.ColliderDepth/2,
		cfg.Player.ColliderWidth,
		cfg.Player.ColliderDepth,
	)
	obj.AddTags(tags.ResolvPlayer)
	if space != nil {
		space.Add(obj)
	}
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	// Spawns standing on the ground plane.
	player.AddComponent(tags.Grounded)

	return player
}
