package factory

import (
	"github.com/automoto/followball/archetypes"
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/automoto/followball/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateMainBall(ecs *ecs.ECS, ball *cfg.Ball) *donburi.Entry {
	return createBall(ecs, archetypes.MainBall.Spawn(ecs), ball, tags.ResolvMain)
}

func CreateFollowerBall(ecs *ecs.ECS, ball *cfg.Ball) *donburi.Entry {
	return createBall(ecs, archetypes.FollowerBall.Spawn(ecs), ball, tags.ResolvFollower)
}

func createBall(ecs *ecs.ECS, entry *donburi.Entry, ball *cfg.Ball, role string) *donburi.Entry {
	size := ball.Size * 2
	obj := resolv.NewObject(0, 0, size, size, tags.ResolvBall, role)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.Get(entry).MoveTo(ball.Start())

	components.Ball.SetValue(entry, components.BallData{
		Radius: ball.Size,
		Color:  ball.Color.NRGBA(),
		Scale:  0,
	})

	// Balls grow in from nothing with a slight overshoot.
	components.Tween.Set(entry, gween.New(0, 1, cfg.Spawn.Duration, ease.OutBack))

	return entry
}
