package factory

import (
	"github.com/automoto/followball/archetypes"
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a camera centred on the world origin.
func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Zoom: cfg.Camera.Zoom})
	return camera
}
