package systems

import (
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/automoto/followball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const contactStrokeWidth = 2

// DrawBalls renders the follower first so the main ball stays on top.
func DrawBalls(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	draw := func(e *donburi.Entry) {
		ball := components.Ball.Get(e)
		obj := components.Object.Get(e)

		radius := ball.Radius * ball.Scale * cameraZoom(camera)
		if radius <= 0 {
			return
		}
		sx, sy := WorldToScreen(camera, obj.Center(), width, height)
		vector.FillCircle(screen, float32(sx), float32(sy), float32(radius), ball.Color, true)

		if ball.Touching {
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius)+contactStrokeWidth,
				contactStrokeWidth, cfg.Contact.Highlight, true)
		}
	}

	tags.FollowerBall.Each(ecs.World, draw)
	tags.MainBall.Each(ecs.World, draw)
}
