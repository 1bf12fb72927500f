package systems

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/tags"
)

// The test camera has identity rotation, so its flattened forward is
// (0, 0, -1) and its right is (1, 0, 0).

func directionWorld(t *testing.T) (*ecs.ECS, *components.InputData, *donburi.Entry) {
	t.Helper()
	e := newTestECS()
	spawnTestClock(e, 1.0/60.0)
	input := spawnTestInput(e)
	spawnTestCamera(e)
	player := spawnTestPlayer(e, mgl64.Vec3{})
	return e, input, player
}

func TestUpdateDirectionDiscrete(t *testing.T) {
	cases := []struct {
		name    string
		actions []cfg.ActionID
		want    mgl64.Vec3
	}{
		{"forward", []cfg.ActionID{cfg.ActionMoveUp}, mgl64.Vec3{0, 0, -1}},
		{"backward", []cfg.ActionID{cfg.ActionMoveDown}, mgl64.Vec3{0, 0, 1}},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, mgl64.Vec3{1, 0, 0}},
		{"diagonal", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveRight},
			mgl64.Vec3{math.Sqrt2 / 2, 0, -math.Sqrt2 / 2}},
		{"opposed cancel", []cfg.ActionID{cfg.ActionMoveUp, cfg.ActionMoveDown}, mgl64.Vec3{}},
		{"none", nil, mgl64.Vec3{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, input, player := directionWorld(t)
			for _, a := range c.actions {
				press(input, a)
			}

			UpdateDirection(e)

			got := components.Movement.Get(player).Direction
			if !vecNear(got, c.want, 1e-9) {
				t.Fatalf("direction = %v, want %v", got, c.want)
			}
		})
	}
}

func TestUpdateDirectionAnalogOverridesDiscrete(t *testing.T) {
	e, input, player := directionWorld(t)
	press(input, cfg.ActionMoveUp)
	input.SetMoveAxis(1, 0)

	UpdateDirection(e)

	got := components.Movement.Get(player).Direction
	if !vecNear(got, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("direction = %v, want analog right (1, 0, 0)", got)
	}
}

func TestUpdateDirectionClearedWhenAirborne(t *testing.T) {
	e, input, player := directionWorld(t)
	press(input, cfg.ActionMoveUp)
	UpdateDirection(e)

	player.RemoveComponent(tags.Grounded)
	UpdateDirection(e)

	movement := components.Movement.Get(player)
	if movement.IsMoving() {
		t.Fatalf("airborne direction = %v, want zero", movement.Direction)
	}

	// Input is ignored until touchdown.
	UpdateDirection(e)
	if movement.IsMoving() {
		t.Fatalf("airborne player re-read input: %v", movement.Direction)
	}
}

func TestRotateToDirectionConverges(t *testing.T) {
	e, _, player := directionWorld(t)
	movement := components.Movement.Get(player)
	movement.Direction = mgl64.Vec3{1, 0, 0}
	transform := components.Transform.Get(player)

	prevDot := transform.Forward().Dot(movement.Direction)
	for i := 0; i < 120; i++ {
		RotateToDirection(e)
		dot := transform.Forward().Dot(movement.Direction)
		if dot < prevDot-1e-12 {
			t.Fatalf("frame %d: facing regressed, dot %v -> %v", i, prevDot, dot)
		}
		prevDot = dot
	}

	if !vecNear(transform.Forward(), movement.Direction, 1e-3) {
		t.Fatalf("forward = %v, did not converge on %v", transform.Forward(), movement.Direction)
	}
}

func TestRotateToDirectionNeverSnaps(t *testing.T) {
	e, _, player := directionWorld(t)
	components.Movement.Get(player).Direction = mgl64.Vec3{1, 0, 0}
	transform := components.Transform.Get(player)

	RotateToDirection(e)

	// One frame at delta*turnSpeed = 1/6 must leave the turn unfinished.
	if vecNear(transform.Forward(), mgl64.Vec3{1, 0, 0}, 0.1) {
		t.Fatalf("orientation snapped to target in one frame: %v", transform.Forward())
	}
}

func TestRotateToDirectionSkipsIdleAndAirborne(t *testing.T) {
	e, _, player := directionWorld(t)
	transform := components.Transform.Get(player)
	before := transform.Rotation

	// Zero direction: no turn.
	RotateToDirection(e)
	if transform.Rotation != before {
		t.Fatalf("rotated with zero direction")
	}

	// Airborne: no turn even with a stale direction.
	components.Movement.Get(player).Direction = mgl64.Vec3{1, 0, 0}
	player.RemoveComponent(tags.Grounded)
	RotateToDirection(e)
	if transform.Rotation != before {
		t.Fatalf("rotated while airborne")
	}
}

func TestRotateToDirectionLandingBoost(t *testing.T) {
	progress := func(landing bool) float64 {
		e, _, player := directionWorld(t)
		components.Movement.Get(player).Direction = mgl64.Vec3{1, 0, 0}
		if landing {
			player.AddComponent(components.Landing)
			components.Landing.SetValue(player, components.NewLanding())
		}
		RotateToDirection(e)
		return components.Transform.Get(player).Forward().Dot(mgl64.Vec3{1, 0, 0})
	}

	if progress(true) <= progress(false) {
		t.Fatalf("landing window did not speed up the turn: %v <= %v",
			progress(true), progress(false))
	}
}

func TestUpdateSpeedAccelerates(t *testing.T) {
	e, _, player := directionWorld(t)
	components.Movement.Get(player).Direction = mgl64.Vec3{0, 0, -1}
	speed := components.PlayerSpeed.Get(player)
	momentum := components.Momentum.Get(player)

	// During warm-up the speed holds at base but momentum already flows.
	for i := 0; i < 10; i++ {
		UpdateSpeed(e)
	}
	if speed.Current() != cfg.Player.BaseSpeed {
		t.Fatalf("speed moved during warm-up: %v", speed.Current())
	}
	if momentum.Get() != cfg.Player.BaseSpeed {
		t.Fatalf("momentum = %v, want base speed during warm-up", momentum.Get())
	}

	for i := 0; i < 600; i++ {
		UpdateSpeed(e)
	}
	if speed.Current() != cfg.Player.BaseTopSpeed {
		t.Fatalf("speed = %v, want top %v after sustained movement",
			speed.Current(), cfg.Player.BaseTopSpeed)
	}
	if momentum.Get() != speed.Current() {
		t.Fatalf("momentum %v diverged from speed %v", momentum.Get(), speed.Current())
	}
}

func TestUpdateSpeedResetsWhenAirborneOrStationary(t *testing.T) {
	e, _, player := directionWorld(t)
	movement := components.Movement.Get(player)
	movement.Direction = mgl64.Vec3{0, 0, -1}
	speed := components.PlayerSpeed.Get(player)
	momentum := components.Momentum.Get(player)

	for i := 0; i < 300; i++ {
		UpdateSpeed(e)
	}
	if speed.Current() <= cfg.Player.BaseSpeed {
		t.Fatalf("setup failed to build speed: %v", speed.Current())
	}

	player.RemoveComponent(tags.Grounded)
	UpdateSpeed(e)
	if momentum.HasMomentum() {
		t.Fatalf("airborne momentum = %v, want zero", momentum.Get())
	}
	if speed.Current() != cfg.Player.BaseSpeed {
		t.Fatalf("airborne speed = %v, want base", speed.Current())
	}

	player.AddComponent(tags.Grounded)
	movement.Direction = mgl64.Vec3{}
	UpdateSpeed(e)
	if momentum.HasMomentum() || speed.Current() != cfg.Player.BaseSpeed {
		t.Fatalf("stationary reset failed: momentum %v speed %v",
			momentum.Get(), speed.Current())
	}
}

func TestUpdateSpeedCrouchDecelerates(t *testing.T) {
	e, input, player := directionWorld(t)
	components.Movement.Get(player).Direction = mgl64.Vec3{0, 0, -1}
	speed := components.PlayerSpeed.Get(player)
	press(input, cfg.ActionCrouch)

	for i := 0; i < 300; i++ {
		UpdateSpeed(e)
	}

	if speed.Current() >= cfg.Player.BaseSpeed {
		t.Fatalf("crouch did not slow the player: %v", speed.Current())
	}
	if speed.Current() < cfg.Player.CrawlSpeed {
		t.Fatalf("speed %v fell below crawl floor %v", speed.Current(), cfg.Player.CrawlSpeed)
	}
}

func TestUpdateSpeedSkipsCrouchingState(t *testing.T) {
	e, _, player := directionWorld(t)
	components.Movement.Get(player).Direction = mgl64.Vec3{0, 0, -1}
	momentum := components.Momentum.Get(player)
	momentum.Set(3)
	player.AddComponent(tags.Crouching)

	UpdateSpeed(e)

	if momentum.Get() != 3 {
		t.Fatalf("momentum = %v, crouching player should be left alone", momentum.Get())
	}
}
