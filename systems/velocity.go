package systems

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	"github.com/mossfell/mossfell/tags"
)

// ApplyMomentum composes the horizontal velocity handed to the physics
// integrator from up to three sources: an outside force, momentum along
// the facing direction, and drift. When no source is active the existing
// velocity is left untouched so ballistic motion persists. The vertical
// component always belongs to the integrator. Entities in a ledge grab are
// exempt; climbing logic owns their velocity.
func ApplyMomentum(e *ecs.ECS) {
	components.Momentum.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.LedgeGrab) {
			return
		}

		velocity := components.Velocity.Get(entry)
		transform := components.Transform.Get(entry)
		momentum := components.Momentum.Get(entry)
		drift := components.Drift.Get(entry)

		var speedToApply mgl64.Vec3
		shouldChangeVelocity := false

		if entry.HasComponent(components.OutsideForce) {
			force := components.OutsideForce.Get(entry)
			shouldChangeVelocity = true
			speedToApply[0] += force.Force.X()
			speedToApply[2] += force.Force.Z()
		}

		if momentum.HasMomentum() {
			shouldChangeVelocity = true
			speedToApply = speedToApply.Add(transform.Forward().Mul(momentum.Get()))
		}

		if drift.HasDrift() {
			shouldChangeVelocity = true
			speedToApply = speedToApply.Add(drift.Velocity)
		}

		if shouldChangeVelocity {
			velocity.Linear[0] = speedToApply.X()
			velocity.Linear[2] = speedToApply.Z()
		}
	})
}
