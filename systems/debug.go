package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/fonts"
	"github.com/mossfell/mossfell/tags"
)

var (
	wallColor   = color.RGBA{90, 90, 100, 255}
	sensorColor = color.RGBA{90, 90, 100, 90}
	playerColor = color.RGBA{80, 200, 90, 255}
	facingColor = color.RGBA{230, 230, 230, 255}
	cameraColor = color.RGBA{240, 190, 60, 255}
	targetColor = color.RGBA{200, 80, 80, 255}
)

// DrawWorld renders a top-down view of the simulation: wall footprints,
// the player with its facing, and the camera with its chase target.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	scale := cfg.Debug.PixelsPerUnit

	// Center the level on screen. World X maps to screen X, world Z to
	// screen Y.
	var minX, minZ, maxX, maxZ float64
	for i, b := range level.Walls {
		if i == 0 || b.Min.X() < minX {
			minX = b.Min.X()
		}
		if i == 0 || b.Min.Z() < minZ {
			minZ = b.Min.Z()
		}
		if b.Max.X() > maxX {
			maxX = b.Max.X()
		}
		if b.Max.Z() > maxZ {
			maxZ = b.Max.Z()
		}
	}
	offX := float64(screen.Bounds().Dx())/2 - (minX+maxX)/2*scale
	offZ := float64(screen.Bounds().Dy())/2 - (minZ+maxZ)/2*scale
	toScreen := func(x, z float64) (float32, float32) {
		return float32(x*scale + offX), float32(z*scale + offZ)
	}

	for _, b := range level.Walls {
		c := wallColor
		if b.Sensor {
			c = sensorColor
		}
		sx, sz := toScreen(b.Min.X(), b.Min.Z())
		vector.DrawFilledRect(screen, sx, sz,
			float32((b.Max.X()-b.Min.X())*scale), float32((b.Max.Z()-b.Min.Z())*scale), c, false)
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		transform := components.Transform.Get(playerEntry)
		px, pz := toScreen(transform.Position.X(), transform.Position.Z())

		// Radius grows a touch with height so jumps read on the flat view.
		radius := float32(0.5*scale) + float32(transform.Position.Y()*0.6)
		vector.DrawFilledCircle(screen, px, pz, radius, playerColor, false)

		f := transform.Forward()
		fx, fz := toScreen(transform.Position.X()+f.X()*1.5, transform.Position.Z()+f.Z()*1.5)
		vector.StrokeLine(screen, px, pz, fx, fz, 2, facingColor, false)
	}

	if camEntry, ok := tags.MainCamera.First(e.World); ok {
		transform := components.Transform.Get(camEntry)
		camera := components.CameraController.Get(camEntry)

		cx, cz := toScreen(transform.Position.X(), transform.Position.Z())
		vector.DrawFilledCircle(screen, cx, cz, 4, cameraColor, false)

		tx, tz := toScreen(camera.TargetPosition.X(), camera.TargetPosition.Z())
		vector.StrokeLine(screen, cx, cz, tx, tz, 1, targetColor, false)
		vector.DrawFilledCircle(screen, tx, tz, 2.5, targetColor, false)
	}
}

// DrawOverlay renders the locomotion/camera state readout when the debug
// setting is on: camera mode and orbit angle, speeds, and marker states.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	face := fonts.Regular.Get()
	lines := overlayLines(e)
	for i, line := range lines {
		text.Draw(screen, line, face, 12, 24+i*18, color.White)
	}
}

func overlayLines(e *ecs.ECS) []string {
	var lines []string

	if camEntry, ok := tags.MainCamera.First(e.World); ok {
		camera := components.CameraController.Get(camEntry)
		lines = append(lines,
			fmt.Sprintf("camera: %s  angle %.0f  blocked %v", camera.Mode, camera.Angle, camera.BlockedByAWall))
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return append(lines, "no player")
	}

	momentum := components.Momentum.Get(playerEntry)
	speed := components.PlayerSpeed.Get(playerEntry)
	lines = append(lines,
		fmt.Sprintf("speed: %.2f / %.2f  momentum %.2f", speed.Current(), speed.TopSpeed(), momentum.Get()))

	lines = append(lines, fmt.Sprintf("grounded %v  landing %v  busy %v  crouching %v",
		playerEntry.HasComponent(tags.Grounded),
		playerEntry.HasComponent(components.Landing),
		playerEntry.HasComponent(components.Busy),
		playerEntry.HasComponent(tags.Crouching)))

	return lines
}
