package components

import "time"

// Timer is a one-shot countdown advanced by frame delta time. Once elapsed
// time reaches the duration it reports finished until Reset is called.
type Timer struct {
	duration time.Duration
	elapsed  time.Duration
}

func NewTimer(d time.Duration) Timer {
	return Timer{duration: d}
}

// TimerFromSeconds builds a Timer from a duration in seconds, matching how
// the tuning constants are expressed in config.
func TimerFromSeconds(seconds float64) Timer {
	return NewTimer(time.Duration(seconds * float64(time.Second)))
}

// Tick advances the timer. Elapsed time saturates at the duration.
func (t *Timer) Tick(delta time.Duration) {
	t.elapsed += delta
	if t.elapsed > t.duration {
		t.elapsed = t.duration
	}
}

func (t *Timer) Finished() bool {
	return t.elapsed >= t.duration
}

func (t *Timer) Reset() {
	t.elapsed = 0
}

func (t *Timer) Elapsed() time.Duration {
	return t.elapsed
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}
