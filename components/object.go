package components

import (
	cfg "github.com/automoto/followball/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObjectData wraps the resolv object used for a ball's bounds. X/Y is the
// top-left corner of the bounding box in space coordinates (world shifted by
// the world half extents).
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// Center returns the world-space centre of the bounds.
func (o ObjectData) Center() dmath.Vec2 {
	return dmath.Vec2{
		X: o.X + o.W/2 - cfg.World.HalfWidth,
		Y: o.Y + o.H/2 - cfg.World.HalfHeight,
	}
}

// MoveTo centres the bounds on a world-space point and refreshes its cells.
func (o ObjectData) MoveTo(center dmath.Vec2) {
	o.X = center.X - o.W/2 + cfg.World.HalfWidth
	o.Y = center.Y - o.H/2 + cfg.World.HalfHeight
	o.Update()
}
