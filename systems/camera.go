package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/gamemath"
	"github.com/mossfell/mossfell/physics"
)

// ToggleCameraMode switches between the dynamic chase and the canonical
// fixed cinematic pose on the camera-mode action.
func ToggleCameraMode(e *ecs.ECS) {
	camEntry := mainCamera(e)
	if camEntry == nil {
		return
	}
	input := inputState(e)
	if input == nil || !input.Action(cfg.ActionCameraMode).JustPressed {
		return
	}

	camera := components.CameraController.Get(camEntry)
	if camera.Mode == components.CameraModeNormal {
		camera.Mode = components.CameraModeFixed
		camera.FixedPosition = mgl64.Vec3(cfg.Camera.FixedPosition)
		camera.FixedLookTarget = mgl64.Vec3(cfg.Camera.FixedLookTarget)
	} else {
		camera.Mode = components.CameraModeNormal
	}
}

// RotateCamera adjusts the orbit angle by one step per discrete press and
// wraps it into [-360, 360].
func RotateCamera(e *ecs.ECS) {
	camEntry := mainCamera(e)
	if camEntry == nil {
		return
	}
	input := inputState(e)
	if input == nil {
		return
	}

	camera := components.CameraController.Get(camEntry)
	if input.Action(cfg.ActionCameraLeft).JustPressed {
		camera.Angle -= cfg.Camera.OrbitStep
	}
	if input.Action(cfg.ActionCameraRight).JustPressed {
		camera.Angle += cfg.Camera.OrbitStep
	}

	if camera.Angle > 360 {
		camera.Angle -= 360
	}
	if camera.Angle < -360 {
		camera.Angle += 360
	}
}

// UpdateCameraTarget computes the chase target: a point behind and above
// the player, pushed out by momentum, clamped to the nearest level
// geometry hit so the camera never ends up inside a wall. Fixed mode
// ignores the player for its target, so this system is Normal-mode only.
func UpdateCameraTarget(e *ecs.ECS) {
	camEntry := mainCamera(e)
	if camEntry == nil {
		return
	}
	camera := components.CameraController.Get(camEntry)
	if camera.Mode != components.CameraModeNormal {
		return
	}

	player := playerEntry(e)
	if player == nil {
		return
	}
	playerTransform := components.Transform.Get(player)
	momentum := components.Momentum.Get(player).Get()

	// Yaw a rotation-less copy of the player transform by the orbit angle
	// and trail along its forward axis.
	starting := components.NewTransform(playerTransform.Position)
	starting.RotateY(camera.Angle)
	dir := starting.Forward()

	camera.PlayerPosition = playerTransform.Position
	desired := starting.Position.
		Add(dir.Mul(camera.DesiredZDistance(momentum))).
		Add(gamemath.Up.Mul(camera.DesiredYHeight(momentum)))

	camera.BlockedByAWall = false
	rayDir := desired.Sub(playerTransform.Position)
	maxDistance := rayDir.Len()
	if walls := levelWalls(e); walls != nil && maxDistance > gamemath.Epsilon {
		hit, ok := physics.CastRay(walls, playerTransform.Position, rayDir, maxDistance,
			physics.Filter{ExcludeSensors: true})
		if ok {
			desired = hit.Point
			camera.BlockedByAWall = true
		}
	}

	camera.TargetPosition = desired
}

// levelWalls returns the level geometry boxes, or nil when no level is
// loaded (the target then stays unclamped).
func levelWalls(e *ecs.ECS) []physics.Box {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		warnOnce("level", "no level geometry; camera occlusion disabled")
		return nil
	}
	return components.Level.Get(levelEntry).Walls
}

// LerpToCameraPosition eases the camera toward its target pose. It runs
// after UpdateCameraTarget in the same frame; reordering them costs a full
// frame of camera lag.
func LerpToCameraPosition(e *ecs.ECS) {
	c := clock(e)
	if c == nil {
		return
	}
	camEntry := mainCamera(e)
	if camEntry == nil {
		return
	}
	transform := components.Transform.Get(camEntry)
	camera := components.CameraController.Get(camEntry)

	amount := c.Delta * camera.DesiredEasingSpeed()
	switch camera.Mode {
	case components.CameraModeNormal:
		transform.Position = gamemath.Lerp(transform.Position, camera.TargetPosition, amount)
		transform.LookAt(camera.PlayerPosition, gamemath.Up)
	case components.CameraModeFixed:
		transform.Position = gamemath.Lerp(transform.Position, camera.FixedPosition, amount)
		transform.LookAt(camera.FixedLookTarget, gamemath.Up)
	}
}

// TriggerCameraShake starts (or strengthens) a camera shake impulse.
func TriggerCameraShake(e *ecs.ECS, intensity, seconds float64) {
	camEntry, ok := components.CameraController.First(e.World)
	if !ok {
		return
	}

	shake := components.ShakeData{
		Tween:     gween.New(float32(intensity), 0, float32(seconds), ease.OutQuad),
		Intensity: intensity,
	}
	if camEntry.HasComponent(components.Shake) {
		// Only override a weaker shake in progress.
		if components.Shake.Get(camEntry).Intensity > intensity {
			return
		}
		components.Shake.SetValue(camEntry, shake)
		return
	}
	camEntry.AddComponent(components.Shake)
	components.Shake.SetValue(camEntry, shake)
}

// UpdateShake applies the decaying shake offset after the pose lerp and
// removes the component once the tween completes. The offset is fed into
// the camera position itself; the lerp pulls it back out, matching the
// decaying envelope.
func UpdateShake(e *ecs.ECS) {
	c := clock(e)
	if c == nil {
		return
	}
	camEntry := mainCamera(e)
	if camEntry == nil || !camEntry.HasComponent(components.Shake) {
		return
	}

	transform := components.Transform.Get(camEntry)
	shake := components.Shake.Get(camEntry)
	shake.Elapsed += c.Delta

	intensity, done := shake.Tween.Update(float32(c.Delta))
	offset := mgl64.Vec3{
		math.Sin(shake.Elapsed*37) * float64(intensity),
		math.Cos(shake.Elapsed*43) * float64(intensity),
		0,
	}
	transform.Position = transform.Position.Add(offset)

	if done {
		camEntry.RemoveComponent(components.Shake)
	}
}
