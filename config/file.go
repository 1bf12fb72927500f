package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileOverrides mirrors the config globals for partial YAML overrides.
// Fields are seeded with the current values before unmarshalling, so keys
// absent from the file keep their defaults.
type fileOverrides struct {
	Game   GameConfig   `yaml:"game"`
	Player PlayerConfig `yaml:"player"`
	Camera CameraConfig `yaml:"camera"`
	Debug  DebugConfig  `yaml:"debug"`
}

// LoadFile applies overrides from a YAML file on top of the built-in
// defaults. A missing file is not an error; tunings then stay at defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return apply(data)
}

func apply(data []byte) error {
	f := fileOverrides{
		Game:   C,
		Player: Player,
		Camera: Camera,
		Debug:  Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	C = f.Game
	Player = f.Player
	Camera = f.Camera
	Debug = f.Debug
	return nil
}
