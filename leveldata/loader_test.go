package leveldata

import (
	"math"
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Walls">
  <object id="1" name="plain" x="32" y="64" width="64" height="32"/>
  <object id="2" name="gate" x="0" y="0" width="32" height="32">
   <properties>
    <property name="height" type="float" value="2.5"/>
    <property name="sensor" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="3" name="spawn" x="160" y="128"/>
 </objectgroup>
</map>
`

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLoadScalesTilesToWorldUnits(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/arena.tmx": {Data: []byte(testTMX)},
	}

	lvl, err := Load(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if lvl.Name != "arena" {
		t.Fatalf("Name = %q, want arena", lvl.Name)
	}
	if lvl.Width != 10 || lvl.Depth != 8 {
		t.Fatalf("size = %vx%v, want 10x8", lvl.Width, lvl.Depth)
	}
	if len(lvl.Walls) != 2 {
		t.Fatalf("walls = %d, want 2", len(lvl.Walls))
	}

	plain := lvl.Walls[0]
	if !near(plain.X, 1) || !near(plain.Z, 2) || !near(plain.W, 2) || !near(plain.D, 1) {
		t.Fatalf("plain wall footprint = %+v", plain)
	}
	if plain.Height != DefaultWallHeight {
		t.Fatalf("plain wall height = %v, want default %v", plain.Height, DefaultWallHeight)
	}
	if plain.Sensor {
		t.Fatalf("plain wall marked sensor")
	}

	gate := lvl.Walls[1]
	if gate.Height != 2.5 {
		t.Fatalf("gate height = %v, want 2.5", gate.Height)
	}
	if !gate.Sensor {
		t.Fatalf("gate should be a sensor")
	}

	if !near(lvl.Spawn.X, 5) || !near(lvl.Spawn.Z, 4) {
		t.Fatalf("spawn = %+v, want (5, 4)", lvl.Spawn)
	}
}

func TestLoadRequiresExactlyOneSpawn(t *testing.T) {
	noSpawn := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="Walls"/>
</map>
`
	fsys := fstest.MapFS{"levels/a.tmx": {Data: []byte(noSpawn)}}
	if _, err := Load(fsys, "levels/a.tmx"); err == nil {
		t.Fatalf("expected error for missing spawn")
	}

	twoSpawns := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="4" height="4" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="32" y="32"/>
  <object id="2" x="64" y="64"/>
 </objectgroup>
</map>
`
	fsys = fstest.MapFS{"levels/b.tmx": {Data: []byte(twoSpawns)}}
	if _, err := Load(fsys, "levels/b.tmx"); err == nil {
		t.Fatalf("expected error for multiple spawns")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "levels/nope.tmx"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
