package assets

import "embed"

//go:embed levels
var Levels embed.FS
