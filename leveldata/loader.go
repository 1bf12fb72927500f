package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file into a Level. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth == 0 || levelMap.TileHeight == 0 {
		return nil, fmt.Errorf("load TMX %s: zero tile size", tmxPath)
	}

	// One map tile equals one world unit.
	sx := 1.0 / float64(levelMap.TileWidth)
	sz := 1.0 / float64(levelMap.TileHeight)

	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	spawnSeen := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				height := o.Properties.GetFloat("height")
				if height == 0 {
					height = DefaultWallHeight
				}
				level.Walls = append(level.Walls, Wall{
					X:      o.X * sx,
					Z:      o.Y * sz,
					W:      o.Width * sx,
					D:      o.Height * sz,
					Height: height,
					Sensor: o.Properties.GetBool("sensor"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				if spawnSeen {
					return nil, fmt.Errorf("load TMX %s: multiple spawn points", tmxPath)
				}
				spawnSeen = true
				level.Spawn = Spawn{X: o.X * sx, Z: o.Y * sz}
			}
		}
	}
	if !spawnSeen {
		return nil, fmt.Errorf("load TMX %s: no PlayerSpawn object", tmxPath)
	}

	return level, nil
}
