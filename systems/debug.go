package systems

import (
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/automoto/followball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// DrawDebug outlines every resolv object in the space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	zoom := cameraZoom(camera)

	for _, obj := range space.Objects() {
		// Top-left in world space is (min x, max y) since y points up.
		topLeft := dmath.Vec2{
			X: obj.X - cfg.World.HalfWidth,
			Y: obj.Y + obj.H - cfg.World.HalfHeight,
		}
		x, y := WorldToScreen(camera, topLeft, width, height)
		w, h := obj.W*zoom, obj.H*zoom
		if x+w < 0 || x > float64(width) || y+h < 0 || y > float64(height) {
			continue
		}

		c := cfg.DebugCyan
		if obj.HasTags(tags.ResolvMain) {
			c = cfg.Yellow
		}
		vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
		vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
		vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
	}
}
