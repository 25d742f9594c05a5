package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ecs layer every entity is created on. Draw order
// comes from depth sorting the snapshot, not from layers.
const (
	Default ecs.LayerID = iota
)
