package systems

import (
	"github.com/automoto/followball/components"
	"github.com/automoto/followball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the debug overlay on F3 and persists the choice.
func UpdateSettings(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		ToggleOverlay(ecs)
	}
}

// ToggleOverlay flips the overlay and saves it.
func ToggleOverlay(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	settings.Overlay = !settings.Overlay
	_ = SaveSettings(&SavedSettings{Overlay: settings.Overlay})
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = factory.CreateSettings(ecs)
	}
	return components.Settings.Get(entry)
}
