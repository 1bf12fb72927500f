package components

import (
	"github.com/yohamta/donburi"
)

// Busy marks the player as locked into an animation-adjacent action. The
// transient state system removes it once the timer finishes; nothing else
// may clear it short of attaching a fresh one.
type BusyData struct {
	Timer Timer
}

func NewBusy(seconds float64) BusyData {
	return BusyData{Timer: TimerFromSeconds(seconds)}
}

var Busy = donburi.NewComponentType[BusyData]()

// landingSeconds is how long the post-landing turn-speed boost lasts.
const landingSeconds = 0.15

// Landing marks the short window right after touching down during which
// the player turns twice as fast.
type LandingData struct {
	Timer Timer
}

func NewLanding() LandingData {
	return LandingData{Timer: TimerFromSeconds(landingSeconds)}
}

var Landing = donburi.NewComponentType[LandingData]()
