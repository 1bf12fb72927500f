package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// speedSnapBand is how close current speed must get to a curve endpoint
// before it snaps (accelerating) or stops changing (decelerating).
const speedSnapBand = 0.3

// PlayerSpeedConfig is the tuning for the speed model. It lives here rather
// than in config to keep the component constructible in isolation.
type PlayerSpeedConfig struct {
	BaseSpeed    float64
	CrawlSpeed   float64
	BaseTopSpeed float64
	Acceleration float64
	Deceleration float64
	AccelWarmup  float64 // seconds before acceleration takes effect
	DecelWarmup  float64 // seconds before deceleration takes effect
}

// PlayerSpeedData ramps the player's forward speed toward a top speed with
// asymmetric accelerate/decelerate curves, each gated by a warm-up timer
// that restarts whenever movement starts. It is owned by the single player
// entity; only the speed system mutates it.
type PlayerSpeedData struct {
	cfg          PlayerSpeedConfig
	accelTimer   Timer
	decelTimer   Timer
	currentSpeed float64
	topSpeed     float64
}

func NewPlayerSpeed(cfg PlayerSpeedConfig) PlayerSpeedData {
	return PlayerSpeedData{
		cfg:          cfg,
		accelTimer:   TimerFromSeconds(cfg.AccelWarmup),
		decelTimer:   TimerFromSeconds(cfg.DecelWarmup),
		currentSpeed: cfg.BaseSpeed,
		topSpeed:     cfg.BaseTopSpeed,
	}
}

func (s *PlayerSpeedData) Current() float64 {
	return s.currentSpeed
}

func (s *PlayerSpeedData) TopSpeed() float64 {
	return s.topSpeed
}

// Reset restores base speeds and restarts both warm-up timers. Called
// whenever the player is stationary or leaves the ground.
func (s *PlayerSpeedData) Reset() {
	s.currentSpeed = s.cfg.BaseSpeed
	s.topSpeed = s.cfg.BaseTopSpeed
	s.accelTimer.Reset()
	s.decelTimer.Reset()
}

// Set pins both current and top speed, overriding the curves. Used by
// collaborating mechanics such as a dash.
func (s *PlayerSpeedData) Set(speed float64) {
	s.currentSpeed = speed
	s.topSpeed = speed
}

// Accelerate moves current speed a fraction of the remaining gap toward the
// top speed once the warm-up has elapsed, snapping to the top speed when
// within the snap band.
func (s *PlayerSpeedData) Accelerate(dt float64) {
	s.accelTimer.Tick(durationFromSeconds(dt))
	if !s.accelTimer.Finished() {
		return
	}
	if s.currentSpeed+speedSnapBand <= s.topSpeed {
		s.currentSpeed += (s.topSpeed - s.currentSpeed) * dt * s.cfg.Acceleration
	} else {
		s.currentSpeed = s.topSpeed
	}
	s.clamp()
}

// Decelerate mirrors Accelerate toward the crawl speed floor. It never
// snaps below the floor.
func (s *PlayerSpeedData) Decelerate(dt float64) {
	s.decelTimer.Tick(durationFromSeconds(dt))
	if !s.decelTimer.Finished() {
		return
	}
	if s.currentSpeed-speedSnapBand >= s.cfg.CrawlSpeed {
		s.currentSpeed += (s.cfg.CrawlSpeed - s.currentSpeed) * dt * s.cfg.Deceleration
	}
	s.clamp()
}

// clamp holds the invariant: crawl speed <= current <= top speed, for any
// frame-delta sequence including ones large enough to overshoot the curves.
func (s *PlayerSpeedData) clamp() {
	if s.currentSpeed > s.topSpeed {
		s.currentSpeed = s.topSpeed
	}
	if s.currentSpeed < s.cfg.CrawlSpeed {
		s.currentSpeed = s.cfg.CrawlSpeed
	}
}

func durationFromSeconds(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

var PlayerSpeed = donburi.NewComponentType[PlayerSpeedData]()
