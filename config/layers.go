package config

import "github.com/yohamta/donburi/ecs"

// Renderer layers, drawn in ascending order.
const (
	Default ecs.LayerID = iota
)
