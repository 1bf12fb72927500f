package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/mossfell/mossfell/config"
)

// Reusable slice for gamepad IDs to avoid allocations.
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw devices into the logical input singleton. Must run
// before every system that reads actions. Everything downstream consumes
// InputData only, so logic systems never touch ebiten directly.
func UpdateInput(e *ecs.ECS) {
	input := inputState(e)
	if input == nil {
		return
	}

	// Swap buffers: current becomes previous, then zero out current.
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Analog move vector from the left stick; overrides discrete presses
	// downstream when outside the deadzone.
	input.SetMoveAxis(readMoveStick(gamepadIDs))
}

func readMoveStick(ids []ebiten.GamepadID) (x, y float64) {
	for _, gpID := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(h, v) < cfg.Input.AnalogDeadzone {
			continue
		}
		// Stick up is negative; forward is positive for us.
		return h, -v
	}
	return 0, 0
}
