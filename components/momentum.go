package components

import (
	"math"

	"github.com/yohamta/donburi"

	"github.com/mossfell/mossfell/gamemath"
)

// MomentumData is the scalar forward speed applied along the player's
// facing direction by the velocity composer.
type MomentumData struct {
	value float64
}

func (m *MomentumData) Get() float64 {
	return m.value
}

func (m *MomentumData) Set(speed float64) {
	m.value = speed
}

func (m *MomentumData) Reset() {
	m.value = 0
}

func (m *MomentumData) HasMomentum() bool {
	return math.Abs(m.value) > gamemath.Epsilon
}

var Momentum = donburi.NewComponentType[MomentumData]()
