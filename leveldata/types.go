// Package leveldata provides TMX level parsing. It has no dependencies on
// ebitengine, donburi, or resolv, pure data only. Map tiles are the world
// unit: the TMX pixel coordinates are divided by the tile size, and each
// wall object's "height" property gives its vertical extent.
package leveldata

// Level holds all geometry-relevant data parsed from a TMX level file.
type Level struct {
	Name   string
	Walls  []Wall
	Spawn  Spawn
	Width  float64 // world units
	Depth  float64
}

// Wall is a solid box footprint on the ground plane.
type Wall struct {
	X, Z   float64 // corner on the ground plane
	W, D   float64 // footprint size
	Height float64 // vertical extent; defaults to DefaultWallHeight
	Sensor bool    // trigger volume, never blocks rays
}

// Spawn is the player spawn location on the ground plane.
type Spawn struct {
	X, Z float64
}

// DefaultWallHeight is used when a wall object carries no height property.
const DefaultWallHeight = 4.0
