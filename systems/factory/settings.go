package factory

import (
	"github.com/automoto/followball/archetypes"
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Overlay: cfg.Debug.Overlay,
	})
	return settings
}
