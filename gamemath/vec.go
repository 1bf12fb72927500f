// Package gamemath provides small vector helpers shared by the locomotion
// and camera systems. It has no dependencies on ebitengine or donburi.
package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-6

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Lerp linearly interpolates from a to b. t is clamped to [0, 1].
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}

// Flatten drops the vertical component of v.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// NormalizeOrZero returns the unit vector of v, or the zero vector when v is
// too short to normalize.
func NormalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() < Epsilon {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

// IsZero reports whether v is the zero vector within Epsilon.
func IsZero(v mgl64.Vec3) bool {
	return v.Len() < Epsilon
}

// Clamp limits v to the range [min, max].
func Clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
