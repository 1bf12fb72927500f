package config

// GameConfig contains window and frame loop configuration.
type GameConfig struct {
	Title    string  `yaml:"title"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TimeStep float64 `yaml:"timeStep"` // simulated seconds per frame
}

// PlayerConfig contains all locomotion tuning values.
type PlayerConfig struct {
	// Orientation
	RotationSpeed float64 `yaml:"rotationSpeed"` // base slerp rate; doubled while landing

	// Speed curve
	BaseSpeed    float64 `yaml:"baseSpeed"`
	CrawlSpeed   float64 `yaml:"crawlSpeed"`
	BaseTopSpeed float64 `yaml:"baseTopSpeed"`
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	AccelWarmup  float64 `yaml:"accelWarmup"` // seconds of movement before accelerating
	DecelWarmup  float64 `yaml:"decelWarmup"`

	// Integrator (collaborating subsystem)
	Gravity        float64 `yaml:"gravity"`
	JumpSpeed      float64 `yaml:"jumpSpeed"`
	ColliderWidth  float64 `yaml:"colliderWidth"` // ground-plane footprint
	ColliderDepth  float64 `yaml:"colliderDepth"`
}

// CameraConfig contains chase camera tuning values.
type CameraConfig struct {
	ZDistance float64 `yaml:"zDistance"`
	YDistance float64 `yaml:"yDistance"`
	Easing    float64 `yaml:"easing"`
	OrbitStep float64 `yaml:"orbitStep"` // degrees per camera-left/right press

	// Canonical fixed cinematic pose used when toggling out of Normal.
	FixedPosition   [3]float64 `yaml:"fixedPosition"`
	FixedLookTarget [3]float64 `yaml:"fixedLookTarget"`

	// Landing impulse shake.
	ShakeIntensity float64 `yaml:"shakeIntensity"`
	ShakeSeconds   float64 `yaml:"shakeSeconds"`
}

// DebugConfig contains debug rendering configuration.
type DebugConfig struct {
	// PixelsPerUnit scales the top-down world view.
	PixelsPerUnit float64 `yaml:"pixelsPerUnit"`
}

var (
	C      GameConfig
	Player PlayerConfig
	Camera CameraConfig
	Debug  DebugConfig
)

func init() {
	C = GameConfig{
		Title:    "Mossfell",
		Width:    1280,
		Height:   720,
		TimeStep: 1.0 / 60.0,
	}

	Player = PlayerConfig{
		RotationSpeed: 10.0,

		BaseSpeed:    7.5,
		CrawlSpeed:   4.0,
		BaseTopSpeed: 15.0,
		Acceleration: 1.0,
		Deceleration: 2.0,
		AccelWarmup:  0.3,
		DecelWarmup:  0.5,

		Gravity:       30.0,
		JumpSpeed:     12.0,
		ColliderWidth: 1.0,
		ColliderDepth: 1.0,
	}

	Camera = CameraConfig{
		ZDistance: 10.0,
		YDistance: 7.0,
		Easing:    4.0,
		OrbitStep: 45.0,

		FixedPosition:   [3]float64{0, 30, -20},
		FixedLookTarget: [3]float64{0, 0, 0},

		ShakeIntensity: 0.35,
		ShakeSeconds:   0.4,
	}

	Debug = DebugConfig{
		PixelsPerUnit: 14,
	}
}
