package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"

	"github.com/mossfell/mossfell/gamemath"
)

// TransformData is a world-space position and orientation. Model space
// follows the GL convention: forward is -Z, up is +Y, right is +X.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

func NewTransform(position mgl64.Vec3) TransformData {
	return TransformData{Position: position, Rotation: mgl64.QuatIdent()}
}

func (t *TransformData) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

func (t *TransformData) Right() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

// RotateY yaws the transform around the world up axis by angle degrees.
func (t *TransformData) RotateY(degrees float64) {
	t.Rotation = mgl64.QuatRotate(mgl64.DegToRad(degrees), gamemath.Up).Mul(t.Rotation).Normalize()
}

// LookAt orients the transform so Forward points from Position toward
// target, with roll removed against up. A target at the current position
// leaves the rotation unchanged.
func (t *TransformData) LookAt(target, up mgl64.Vec3) {
	dir := target.Sub(t.Position)
	if gamemath.IsZero(dir) {
		return
	}
	dir = dir.Normalize()

	rot := mgl64.QuatBetweenVectors(mgl64.Vec3{0, 0, -1}, dir)

	// Remove roll: align the rotated up axis with world up projected onto
	// the plane perpendicular to dir.
	currentUp := rot.Rotate(mgl64.Vec3{0, 1, 0})
	desiredUp := up.Sub(dir.Mul(up.Dot(dir)))
	if !gamemath.IsZero(desiredUp) {
		rot = mgl64.QuatBetweenVectors(currentUp, desiredUp.Normalize()).Mul(rot)
	}
	t.Rotation = rot.Normalize()
}

var Transform = donburi.NewComponentType[TransformData]()
