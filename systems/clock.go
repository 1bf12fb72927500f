package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
)

// UpdateClock advances the singleton frame clock. The loop is fixed-rate
// (ebiten ticks), so the delta is the configured time step rather than
// wall time; tests drive the clock directly with arbitrary deltas.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = archetypes.Clock.Spawn(e)
	}
	clock := components.Clock.Get(entry)
	clock.Delta = cfg.C.TimeStep
}
