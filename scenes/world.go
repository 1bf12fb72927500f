package scenes

import (
	"image/color"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/assets"
	cfg "github.com/mossfell/mossfell/config"
	"github.com/mossfell/mossfell/leveldata"
	"github.com/mossfell/mossfell/systems"
	"github.com/mossfell/mossfell/systems/factory"
)

// WorldScene runs the locomotion core: one player, one chase camera, one
// level.
type WorldScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	lvl, err := leveldata.Load(assets.Levels, "levels/arena.tmx")
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Frame bookkeeping and intent gathering.
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)

	// Locomotion. Direction first, then orientation and speed feed the
	// momentum composer.
	ecs.AddSystem(systems.UpdateDirection)
	ecs.AddSystem(systems.RotateToDirection)
	ecs.AddSystem(systems.UpdateSpeed)
	ecs.AddSystem(systems.ApplyMomentum)

	// Transient states tick after locomotion so a state added this frame
	// survives a full frame before its timer starts draining.
	ecs.AddSystem(systems.UpdateBusy)
	ecs.AddSystem(systems.UpdateLanding)

	ecs.AddSystem(systems.UpdatePhysics)

	// Camera runs last so it sees settled player state.
	ecs.AddSystem(systems.ToggleCameraMode)
	ecs.AddSystem(systems.RotateCamera)
	ecs.AddSystem(systems.UpdateCameraTarget)
	ecs.AddSystem(systems.LerpToCameraPosition)
	ecs.AddSystem(systems.UpdateShake)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)

	space := factory.CreateSpace(ecs, lvl)
	factory.CreateLevel(ecs, lvl, space)
	factory.CreatePlayer(ecs, mgl64.Vec3{lvl.Spawn.X, 0, lvl.Spawn.Z}, space)
	factory.CreateCamera(ecs)
	factory.CreateInput(ecs)

	systems.SeedSettings(systems.GetOrCreateSettings(ecs))

	ws.ecs = ecs
}
