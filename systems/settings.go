package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/mossfell/mossfell/archetypes"
	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
)

// GetOrCreateSettings returns the settings singleton, creating it on first
// use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay on the debug action and saves
// the change.
func UpdateSettings(e *ecs.ECS) {
	input := inputState(e)
	if input == nil || !input.Action(cfg.ActionDebug).JustPressed {
		return
	}

	settings := GetOrCreateSettings(e)
	settings.Debug = !settings.Debug
	saveCurrentSettings(settings)
}
