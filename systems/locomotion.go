package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/gamemath"
	"github.com/mossfell/mossfell/tags"
)

// UpdateDirection resolves the desired world-space movement direction from
// camera-relative input. Grounded players recompute it every frame;
// airborne players keep it zeroed (cleared once on leaving the ground, not
// re-read from input until they land).
func UpdateDirection(e *ecs.ECS) {
	camEntry := mainCamera(e)
	if camEntry == nil {
		return
	}
	camTransform := components.Transform.Get(camEntry)
	input := inputState(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		movement := components.Movement.Get(entry)
		if entry.HasComponent(tags.Grounded) {
			movement.Direction = directionInCameraSpace(camTransform, input)
		} else if movement.IsMoving() {
			movement.Direction = mgl64.Vec3{}
		}
	})
}

// directionInCameraSpace flattens the camera basis onto the horizontal
// plane and combines the directional inputs into a unit (or zero) world
// direction. An active analog move vector overrides the discrete presses.
func directionInCameraSpace(camera *components.TransformData, input *components.InputData) mgl64.Vec3 {
	if input == nil {
		return mgl64.Vec3{}
	}

	forward := gamemath.NormalizeOrZero(gamemath.Flatten(camera.Forward()))
	right := gamemath.NormalizeOrZero(gamemath.Flatten(camera.Right()))

	var x, z float64
	if input.Action(cfg.ActionMoveUp).Pressed {
		z += 1
	}
	if input.Action(cfg.ActionMoveDown).Pressed {
		z -= 1
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		x += 1
	}
	if input.Action(cfg.ActionMoveLeft).Pressed {
		x -= 1
	}

	if ax, az, ok := input.MoveAxis(); ok {
		x = ax
		z = az
	}

	return gamemath.NormalizeOrZero(right.Mul(x).Add(forward.Mul(z)))
}

// RotateToDirection turns grounded, moving players toward their movement
// direction by spherical interpolation. The turn rate doubles during the
// short landing window so the character snaps to facing after touchdown.
// Orientation only ever approaches the target; it never jumps.
func RotateToDirection(e *ecs.ECS) {
	c := clock(e)
	if c == nil {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(tags.Grounded) {
			return
		}
		transform := components.Transform.Get(entry)
		movement := components.Movement.Get(entry)

		dir := gamemath.NormalizeOrZero(gamemath.Flatten(movement.Direction))
		if gamemath.IsZero(dir) {
			return
		}

		target := components.TransformData{Position: transform.Position, Rotation: transform.Rotation}
		target.LookAt(transform.Position.Add(dir), gamemath.Up)

		turnSpeed := cfg.Player.RotationSpeed
		if entry.HasComponent(components.Landing) {
			turnSpeed *= 2
		}

		amount := math.Min(c.Delta*turnSpeed, 1)
		transform.Rotation = mgl64.QuatSlerp(transform.Rotation, target.Rotation, amount).Normalize()
	})
}

// UpdateSpeed drives the speed model and publishes the result as momentum.
// Grounded, moving players accelerate toward top speed, or decelerate
// toward the crawl floor while the crouch action is held (crouch is a
// deceleration request, not a freeze). Stationary or airborne players
// reset both the model and their momentum; horizontal velocity then
// persists ballistically through the integrator. Players latched in a
// Crouching state are owned by the crouch mechanic and skipped entirely.
func UpdateSpeed(e *ecs.ECS) {
	c := clock(e)
	if c == nil {
		return
	}
	input := inputState(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		momentum := components.Momentum.Get(entry)
		speed := components.PlayerSpeed.Get(entry)
		movement := components.Movement.Get(entry)

		if !entry.HasComponent(tags.Grounded) || !movement.IsMoving() {
			momentum.Reset()
			speed.Reset()
			return
		}
		if entry.HasComponent(tags.Crouching) {
			return
		}

		if input != nil && input.Action(cfg.ActionCrouch).Pressed {
			speed.Decelerate(c.Delta)
		} else {
			speed.Accelerate(c.Delta)
		}
		momentum.Set(speed.Current())
	})
}
