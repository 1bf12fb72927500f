package components

import "github.com/yohamta/donburi"

// SettingsData is the singleton operator-facing settings state, persisted
// across sessions.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
