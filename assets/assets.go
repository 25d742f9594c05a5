// Package assets embeds the level maps and synthesizes the sound cues.
// Nothing here depends on ebiten so headless binaries can load levels.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var assetFS embed.FS

// FS returns the embedded asset tree. Level paths are relative to it, for
// example "levels/iron_district.tmx".
func FS() fs.FS {
	return assetFS
}
