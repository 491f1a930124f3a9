package archetypes

import (
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/automoto/followball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	MainBall = newArchetype(
		tags.MainBall,
		components.Ball,
		components.Object,
		components.Tween,
	)
	FollowerBall = newArchetype(
		tags.FollowerBall,
		components.Ball,
		components.Object,
		components.Tween,
	)
	Rig = newArchetype(
		components.Rig,
		components.Clock,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
