package systems

import (
	"github.com/automoto/followball/components"
	dmath "github.com/yohamta/donburi/features/math"
)

// ScreenToWorld converts a screen pixel to world space. The world has its
// origin at the camera position and y pointing up.
func ScreenToWorld(camera *components.CameraData, sx, sy float64, width, height int) dmath.Vec2 {
	zoom := cameraZoom(camera)
	return dmath.Vec2{
		X: (sx-float64(width)/2)/zoom + camera.Position.X,
		Y: (float64(height)/2-sy)/zoom + camera.Position.Y,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func WorldToScreen(camera *components.CameraData, p dmath.Vec2, width, height int) (float64, float64) {
	zoom := cameraZoom(camera)
	sx := (p.X-camera.Position.X)*zoom + float64(width)/2
	sy := float64(height)/2 - (p.Y-camera.Position.Y)*zoom
	return sx, sy
}

func cameraZoom(camera *components.CameraData) float64 {
	if camera.Zoom <= 0 {
		return 1
	}
	return camera.Zoom
}
