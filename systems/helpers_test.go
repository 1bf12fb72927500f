package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/physics"
	"github.com/mossfell/mossfell/tags"
)

// Test worlds are built by hand so every system runs headless: the clock is
// driven directly and actions are poked into the input singleton instead of
// polling devices.

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func spawnTestClock(e *ecs.ECS, delta float64) *components.ClockData {
	entry := archetypes.Clock.Spawn(e)
	components.Clock.SetValue(entry, components.ClockData{Delta: delta})
	return components.Clock.Get(entry)
}

func spawnTestInput(e *ecs.ECS) *components.InputData {
	entry := archetypes.Input.Spawn(e)
	return components.Input.Get(entry)
}

// press marks an action held this frame. With a zeroed Previous buffer the
// first press also reads as JustPressed.
func press(input *components.InputData, id cfg.ActionID) {
	input.Current[id] = true
}

// settle copies Current into Previous, turning held actions into plain
// Pressed on the next read.
func settle(input *components.InputData) {
	input.Previous = input.Current
}

func spawnTestCamera(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Camera.Spawn(e)
	components.Transform.SetValue(entry, components.NewTransform(
		mgl64.Vec3{0, cfg.Camera.YDistance, cfg.Camera.ZDistance}))
	components.CameraController.SetValue(entry, components.CameraControllerData{
		ZDistance: cfg.Camera.ZDistance,
		YDistance: cfg.Camera.YDistance,
		Easing:    cfg.Camera.Easing,
	})
	return entry
}

// spawnTestPlayer creates a grounded player with no collision object, so
// horizontal motion is unobstructed unless a test wires a resolv space.
func spawnTestPlayer(e *ecs.ECS, position mgl64.Vec3) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)
	components.Transform.SetValue(entry, components.NewTransform(position))
	components.PlayerSpeed.SetValue(entry, components.NewPlayerSpeed(components.PlayerSpeedConfig{
		BaseSpeed:    cfg.Player.BaseSpeed,
		CrawlSpeed:   cfg.Player.CrawlSpeed,
		BaseTopSpeed: cfg.Player.BaseTopSpeed,
		Acceleration: cfg.Player.Acceleration,
		Deceleration: cfg.Player.Deceleration,
		AccelWarmup:  cfg.Player.AccelWarmup,
		DecelWarmup:  cfg.Player.DecelWarmup,
	}))
	entry.AddComponent(tags.Grounded)
	return entry
}

func spawnTestLevel(e *ecs.ECS, walls []physics.Box) *donburi.Entry {
	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{Name: "test", Walls: walls})
	return entry
}

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}
