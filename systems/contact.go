package systems

import (
	"github.com/automoto/followball/components"
	"github.com/automoto/followball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContact flags the follower while it overlaps the main ball. resolv
// narrows the candidates by cell; the circle test decides.
func UpdateContact(ecs *ecs.ECS) {
	tags.FollowerBall.Each(ecs.World, func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		obj := components.Object.Get(e)
		ball.Touching = false

		check := obj.Check(0, 0, tags.ResolvMain)
		if check == nil {
			return
		}
		for _, other := range check.Objects {
			otherEntry, ok := other.Data.(*donburi.Entry)
			if !ok || !otherEntry.Valid() || !otherEntry.HasComponent(components.Ball) {
				continue
			}
			otherBall := components.Ball.Get(otherEntry)
			dist := obj.Center().Sub(components.ObjectData{Object: other}.Center()).Magnitude()
			if dist < ball.Radius+otherBall.Radius {
				ball.Touching = true
				return
			}
		}
	})
}
