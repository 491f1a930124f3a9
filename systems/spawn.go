package systems

import (
	"github.com/automoto/followball/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawn advances each ball's grow-in tween and drops it when done.
func UpdateSpawn(ecs *ecs.ECS) {
	dt := float32(frameDT(ecs))

	var finished []*donburi.Entry
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		scale, done := components.Tween.Get(e).Update(dt)
		if e.HasComponent(components.Ball) {
			components.Ball.Get(e).Scale = float64(scale)
		}
		if done {
			finished = append(finished, e)
		}
	})

	// Removing a component moves the entry to another archetype, so do it
	// outside the iteration.
	for _, e := range finished {
		if e.HasComponent(components.Ball) {
			components.Ball.Get(e).Scale = 1
		}
		e.RemoveComponent(components.Tween)
	}
}
