package factory

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
)

// CreateCamera spawns the chase camera in Normal mode, starting at its
// configured trailing offset.
func CreateCamera(e *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	components.Transform.SetValue(camera, components.NewTransform(
		mgl64.Vec3{0, cfg.Camera.YDistance, cfg.Camera.ZDistance}))
	components.CameraController.SetValue(camera, components.CameraControllerData{
		ZDistance: cfg.Camera.ZDistance,
		YDistance: cfg.Camera.YDistance,
		Easing:    cfg.Camera.Easing,
		Mode:      components.CameraModeNormal,
	})
	return camera
}
