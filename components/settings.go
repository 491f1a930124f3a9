package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Overlay bool // debug bounds + HUD
}

var Settings = donburi.NewComponentType[SettingsData]()
