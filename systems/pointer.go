package systems

import (
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// CursorSampler reads the mouse cursor and maps it into world space through
// the first camera in the world.
type CursorSampler struct {
	world donburi.World
}

func NewCursorSampler(world donburi.World) *CursorSampler {
	return &CursorSampler{world: world}
}

// Sample reports false while the window is unfocused or the cursor is
// outside the screen, so the main ball holds its last position.
func (s *CursorSampler) Sample() (dmath.Vec2, bool) {
	if !ebiten.IsFocused() {
		return dmath.Vec2{}, false
	}
	x, y := ebiten.CursorPosition()
	return sampleScreen(s.world, x, y, cfg.C.Width, cfg.C.Height)
}

func sampleScreen(world donburi.World, x, y, width, height int) (dmath.Vec2, bool) {
	if x < 0 || y < 0 || x >= width || y >= height {
		return dmath.Vec2{}, false
	}
	cameraEntry, ok := components.Camera.First(world)
	if !ok {
		return dmath.Vec2{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return ScreenToWorld(camera, float64(x), float64(y), width, height), true
}
