package factory

import (
	"github.com/automoto/followball/archetypes"
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/automoto/followball/shared/dynamics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateRig spawns the entity that owns the frame driver. The driver's sink
// writes published positions into the two balls' bounds.
func CreateRig(ecs *ecs.ECS, scene *cfg.Scene, sampler dynamics.Sampler, main, follower *donburi.Entry) *donburi.Entry {
	rig := archetypes.Rig.Spawn(ecs)

	sink := dynamics.SinkFunc(func(id dynamics.EntityID, pos dmath.Vec2) {
		switch id {
		case dynamics.MainEntity:
			components.Object.Get(main).MoveTo(pos)
		case dynamics.FollowerEntity:
			components.Object.Get(follower).MoveTo(pos)
		}
	})

	coeffs := dynamics.NewCoefficients(scene.Parameters())
	driver := dynamics.NewDriver(coeffs, scene.MainBall.Start(), scene.FollowerBall.Start(), sampler, sink)

	components.Rig.SetValue(rig, components.RigData{
		Driver:   driver,
		Main:     main,
		Follower: follower,
	})
	components.Clock.SetValue(rig, components.ClockData{})

	return rig
}
