package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mossfell/mossfell/components"
	"github.com/mossfell/mossfell/tags"
)

func TestApplyMomentumAlongFacing(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e, mgl64.Vec3{})
	velocity := components.Velocity.Get(player)
	velocity.Linear = mgl64.Vec3{0, -2, 0}
	components.Momentum.Get(player).Set(6)

	ApplyMomentum(e)

	// Identity facing is (0, 0, -1); the vertical component belongs to the
	// integrator and stays untouched.
	want := mgl64.Vec3{0, -2, -6}
	if !vecNear(velocity.Linear, want, 1e-9) {
		t.Fatalf("velocity = %v, want %v", velocity.Linear, want)
	}
}

func TestApplyMomentumSumsSources(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e, mgl64.Vec3{})
	velocity := components.Velocity.Get(player)
	components.Momentum.Get(player).Set(6)
	components.Drift.Get(player).Velocity = mgl64.Vec3{2, 0, 0}
	player.AddComponent(components.OutsideForce)
	components.OutsideForce.SetValue(player, components.OutsideForceData{
		Force: mgl64.Vec3{1, 0, 3},
	})

	ApplyMomentum(e)

	want := mgl64.Vec3{3, 0, -3} // force (1,0,3) + momentum (0,0,-6) + drift (2,0,0)
	if !vecNear(velocity.Linear, want, 1e-9) {
		t.Fatalf("velocity = %v, want %v", velocity.Linear, want)
	}
}

func TestApplyMomentumLeavesBallisticVelocity(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e, mgl64.Vec3{})
	velocity := components.Velocity.Get(player)
	velocity.Linear = mgl64.Vec3{4, -3, 2}

	// No momentum, no drift, no outside force: the composer must not touch
	// the velocity, or airborne players would stop dead mid-arc.
	ApplyMomentum(e)

	if velocity.Linear != (mgl64.Vec3{4, -3, 2}) {
		t.Fatalf("velocity = %v, want untouched (4, -3, 2)", velocity.Linear)
	}
}

func TestApplyMomentumSkipsLedgeGrab(t *testing.T) {
	e := newTestECS()
	player := spawnTestPlayer(e, mgl64.Vec3{})
	velocity := components.Velocity.Get(player)
	velocity.Linear = mgl64.Vec3{0, 0, 0}
	components.Momentum.Get(player).Set(6)
	player.AddComponent(tags.LedgeGrab)

	ApplyMomentum(e)

	if velocity.Linear != (mgl64.Vec3{}) {
		t.Fatalf("velocity = %v, ledge grab should own velocity", velocity.Linear)
	}
}
