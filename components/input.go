package components

import (
	"math"

	"github.com/yohamta/donburi"

	cfg "github.com/mossfell/mossfell/config"
)

// ActionState is the temporal state of a logical action.
type ActionState struct {
	Pressed      bool // currently held down
	JustPressed  bool // pressed this frame
	JustReleased bool // released this frame
}

// InputData is the singleton logical input state. The input system polls
// devices into Current once per frame; everything downstream reads actions
// through this component, never the devices, so logic systems run headless.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Analog move vector in [-1, 1], already deadzone-filtered. X is the
	// right axis, Y the forward axis. When active it overrides the
	// discrete directional presses.
	MoveX, MoveY float64
	MoveActive   bool
}

// Action derives the temporal state for one action from the frame buffers.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[id],
		JustPressed:  i.Current[id] && !i.Previous[id],
		JustReleased: !i.Current[id] && i.Previous[id],
	}
}

// MoveAxis returns the analog move vector, or ok=false when no analog
// input is active so callers fall back to the discrete presses.
func (i *InputData) MoveAxis() (x, y float64, ok bool) {
	if !i.MoveActive {
		return 0, 0, false
	}
	return i.MoveX, i.MoveY, true
}

// SetMoveAxis stores an analog move vector, treating near-zero magnitude
// as inactive.
func (i *InputData) SetMoveAxis(x, y float64) {
	if math.Hypot(x, y) < 1e-3 {
		i.MoveX, i.MoveY, i.MoveActive = 0, 0, false
		return
	}
	i.MoveX, i.MoveY, i.MoveActive = x, y, true
}

var Input = donburi.NewComponentType[InputData]()
