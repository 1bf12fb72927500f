package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CameraMode int

const (
	CameraModeNormal CameraMode = iota
	CameraModeFixed
)

func (m CameraMode) String() string {
	if m == CameraModeFixed {
		return "Fixed"
	}
	return "Normal"
}

// Momentum thresholds below which the camera uses its near framing. The
// steps are intentional: the camera visibly shifts framing as the player
// picks up speed instead of scaling continuously.
const (
	cameraLowMomentum  = 5.0
	cameraHighMomentum = 10.0
)

// Easing multipliers. Blocked applies in Normal mode while the chase ray is
// occluded; Fixed applies in Fixed mode. They are mutually exclusive.
const (
	cameraBlockedEasingScale = 2.5
	cameraFixedEasingScale   = 5.0
)

// CameraControllerData drives the chase camera: trailing distances, orbit
// angle, easing rate, the cached ray-clamped target, and the mode switch
// between the dynamic chase and a fixed cinematic pose.
type CameraControllerData struct {
	ZDistance float64
	YDistance float64
	Angle     float64 // orbit angle in degrees, wrapped to [-360, 360]
	Easing    float64

	TargetPosition mgl64.Vec3
	PlayerPosition mgl64.Vec3

	Mode            CameraMode
	FixedPosition   mgl64.Vec3
	FixedLookTarget mgl64.Vec3

	BlockedByAWall bool
}

// DesiredYHeight is the camera height above the player: half height while
// momentum is low, full height once moving fast.
func (c *CameraControllerData) DesiredYHeight(momentum float64) float64 {
	if momentum < cameraLowMomentum {
		return c.YDistance / 2
	}
	return c.YDistance
}

// DesiredZDistance is the trailing distance, pushed out by half at high
// momentum.
func (c *CameraControllerData) DesiredZDistance(momentum float64) float64 {
	if momentum < cameraHighMomentum {
		return c.ZDistance
	}
	return c.ZDistance * 1.5
}

// DesiredEasingSpeed is the pose-lerp rate for this frame: boosted for a
// snappy recovery while the chase ray is occluded, boosted harder for the
// cut into the fixed cinematic pose.
func (c *CameraControllerData) DesiredEasingSpeed() float64 {
	if c.Mode == CameraModeFixed {
		return c.Easing * cameraFixedEasingScale
	}
	if c.BlockedByAWall {
		return c.Easing * cameraBlockedEasingScale
	}
	return c.Easing
}

var CameraController = donburi.NewComponentType[CameraControllerData]()

// ShakeData is a decaying positional impulse applied to the camera after
// the pose lerp, e.g. on landing. The tween drives intensity to zero; the
// shake system removes the component when it completes.
type ShakeData struct {
	Tween     *gween.Tween
	Intensity float64 // starting intensity, for strength comparison
	Elapsed   float64
}

var Shake = donburi.NewComponentType[ShakeData]()
