package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/tags"
)

// groundEpsilon is the height above the ground plane below which the
// player counts as in contact.
const groundEpsilon = 1e-3

// UpdatePhysics is the rigid-body integrator consumed by the locomotion
// core: it advances positions from velocity, applies gravity, resolves
// ground-plane collisions against the resolv space, and owns the
// Grounded/Landing transitions. It also carries the jump impulse, a
// collaborating mechanic that writes the same vertical velocity and
// grounded state the core reads.
func UpdatePhysics(e *ecs.ECS) {
	c := clock(e)
	if c == nil {
		return
	}
	dt := c.Delta
	input := inputState(e)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		velocity := components.Velocity.Get(entry)
		transform := components.Transform.Get(entry)

		grounded := entry.HasComponent(tags.Grounded)
		if grounded && !entry.HasComponent(tags.LedgeGrab) &&
			input != nil && input.Action(cfg.ActionJump).JustPressed {
			velocity.Linear[1] = cfg.Player.JumpSpeed
			entry.RemoveComponent(tags.Grounded)
			grounded = false
		}

		velocity.Linear[1] -= cfg.Player.Gravity * dt

		moveOnGroundPlane(entry, transform, velocity, dt)

		// Vertical motion against the ground plane at y=0. Walls are
		// full-height, so the plane is the only vertical contact.
		newY := transform.Position.Y() + velocity.Linear.Y()*dt
		if newY <= 0 {
			newY = 0
			if velocity.Linear.Y() < 0 {
				velocity.Linear[1] = 0
			}
			if !grounded {
				land(e, entry)
			}
		} else if newY > groundEpsilon && grounded {
			entry.RemoveComponent(tags.Grounded)
		}
		transform.Position[1] = newY
	})
}

// moveOnGroundPlane advances the horizontal components through the resolv
// space, stopping each axis against solid footprints. Resolv X/Y map to
// world X/Z. Without a collision object the motion is unobstructed.
func moveOnGroundPlane(entry *donburi.Entry, transform *components.TransformData, velocity *components.VelocityData, dt float64) {
	dx := velocity.Linear.X() * dt
	dz := velocity.Linear.Z() * dt

	obj := components.Object.Get(entry)
	if obj == nil || obj.Object == nil {
		transform.Position[0] += dx
		transform.Position[2] += dz
		return
	}

	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		dx = 0
		velocity.Linear[0] = 0
	}
	if check := obj.Check(dx, dz, tags.ResolvSolid); check != nil {
		dz = 0
		velocity.Linear[2] = 0
	}
	obj.X += dx
	obj.Y += dz
	obj.Update()

	transform.Position[0] = obj.X + obj.W/2
	transform.Position[2] = obj.Y + obj.H/2
}

// land records ground contact after an airborne frame: Grounded comes
// back, the landing turn-boost window opens (a fresh timer even if one was
// still running), and the camera gets a touchdown impulse.
func land(e *ecs.ECS, entry *donburi.Entry) {
	entry.AddComponent(tags.Grounded)

	landing := components.NewLanding()
	if entry.HasComponent(components.Landing) {
		components.Landing.SetValue(entry, landing)
	} else {
		entry.AddComponent(components.Landing)
		components.Landing.SetValue(entry, landing)
	}

	TriggerCameraShake(e, cfg.Camera.ShakeIntensity, cfg.Camera.ShakeSeconds)
}
