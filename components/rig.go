package components

import (
	"github.com/automoto/followball/shared/dynamics"
	"github.com/yohamta/donburi"
)

// RigData owns the frame driver and the entries it publishes into.
type RigData struct {
	Driver   *dynamics.Driver
	Main     *donburi.Entry
	Follower *donburi.Entry
}

var Rig = donburi.NewComponentType[RigData]()
