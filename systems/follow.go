package systems

import (
	"github.com/automoto/followball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFollow runs one driver pass per rig: sample the pointer, estimate
// the main ball's velocity, step the follower and write both positions.
// Must run after UpdateClock.
func UpdateFollow(ecs *ecs.ECS) {
	components.Rig.Each(ecs.World, func(e *donburi.Entry) {
		rig := components.Rig.Get(e)
		clock := components.Clock.Get(e)
		rig.Driver.Tick(clock.DT)
	})
}
