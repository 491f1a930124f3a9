package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// BallData is the drawable part of a ball. Its position lives in Object.
type BallData struct {
	Radius   float64
	Color    color.NRGBA
	Scale    float64 // spawn-in scale, 0..1
	Touching bool    // follower overlaps the main ball this frame
}

var Ball = donburi.NewComponentType[BallData]()
