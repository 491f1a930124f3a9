package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives a ball's spawn-in scale; removed once finished.
var Tween = donburi.NewComponentType[gween.Tween]()
