package scenes

import (
	"sync"

	cfg "github.com/automoto/followball/config"
	"github.com/automoto/followball/shared/dynamics"
	"github.com/automoto/followball/systems"
	"github.com/automoto/followball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FollowScene is the only scene: a pointer-driven main ball and its follower.
type FollowScene struct {
	ecs     *ecs.ECS
	scene   *cfg.Scene
	sampler dynamics.Sampler
	once    sync.Once
}

// NewFollowScene drives the main ball from the mouse cursor.
func NewFollowScene(scene *cfg.Scene) *FollowScene {
	return &FollowScene{scene: scene}
}

// NewFollowSceneWithSampler drives the main ball from any sampler.
func NewFollowSceneWithSampler(scene *cfg.Scene, sampler dynamics.Sampler) *FollowScene {
	return &FollowScene{scene: scene, sampler: sampler}
}

func (fs *FollowScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FollowScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Background)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FollowScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Clock first: every later system reads this tick's dt.
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateFollow)
	e.AddSystem(systems.UpdateContact)
	e.AddSystem(systems.UpdateSpawn)

	e.AddRenderer(cfg.Default, systems.DrawBalls)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	sampler := fs.sampler
	if sampler == nil {
		sampler = systems.NewCursorSampler(e.World)
	}
	spawnEntities(e, fs.scene, sampler)

	fs.ecs = e
}

// spawnEntities creates everything the systems expect. The space must exist
// before the balls so their bounds get registered.
func spawnEntities(e *ecs.ECS, scene *cfg.Scene, sampler dynamics.Sampler) {
	factory.CreateSettings(e)
	factory.CreateCamera(e)
	factory.CreateSpace(e,
		int(cfg.World.HalfWidth*2),
		int(cfg.World.HalfHeight*2),
		cfg.World.CellSize, cfg.World.CellSize,
	)

	follower := factory.CreateFollowerBall(e, scene.FollowerBall)
	main := factory.CreateMainBall(e, scene.MainBall)
	factory.CreateRig(e, scene, sampler, main, follower)
}
