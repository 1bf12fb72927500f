package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"

	"github.com/mossfell/mossfell/components"
	cfg "github.com/mossfell/mossfell/config"
)

// SavedSettings represents the settings data stored on disk.
type SavedSettings struct {
	Debug           bool    `json:"debug"`
	CameraZDistance float64 `json:"cameraZDistance"`
	CameraYDistance float64 `json:"cameraYDistance"`
	CameraEasing    float64 `json:"cameraEasing"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "mossfell",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A nil result with nil error means
// no saved settings exist yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk.
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize saved settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal overlays saved camera tunings on the config
// before the world is built. Zero values mean "never saved"; defaults win.
func ApplySavedSettingsGlobal(s *SavedSettings) {
	if s == nil {
		return
	}
	if s.CameraZDistance > 0 {
		cfg.Camera.ZDistance = s.CameraZDistance
	}
	if s.CameraYDistance > 0 {
		cfg.Camera.YDistance = s.CameraYDistance
	}
	if s.CameraEasing > 0 {
		cfg.Camera.Easing = s.CameraEasing
	}
	savedDebug = s.Debug
}

// savedDebug seeds the settings singleton when the world creates it.
var savedDebug bool

// SeedSettings pushes the loaded debug flag into a freshly created world.
func SeedSettings(settings *components.SettingsData) {
	settings.Debug = savedDebug
}

func saveCurrentSettings(settings *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:           settings.Debug,
		CameraZDistance: cfg.Camera.ZDistance,
		CameraYDistance: cfg.Camera.YDistance,
		CameraEasing:    cfg.Camera.Easing,
	})
}
