package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	MainCamera = donburi.NewTag().SetName("MainCamera")
	Wall       = donburi.NewTag().SetName("Wall")

	// Locomotion state markers. Grounded is attached/detached by the
	// physics integrator; Crouching and LedgeGrab by collaborating
	// mechanics. Busy and Landing carry timers and live in components.
	Grounded  = donburi.NewTag().SetName("Grounded")
	Crouching = donburi.NewTag().SetName("Crouching")
	LedgeGrab = donburi.NewTag().SetName("LedgeGrab")
)

// Resolv tags for ground-plane collision.
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
)
