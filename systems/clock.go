package systems

import (
	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation by one fixed tick. ebiten calls Update
// TPS times per second and runs catch-up ticks back to back after a stall, so
// wall-clock deltas would alternate between a long frame and ~0.
func UpdateClock(ecs *ecs.ECS) {
	tps := ebiten.TPS()
	components.Clock.Each(ecs.World, func(e *donburi.Entry) {
		advanceClock(components.Clock.Get(e), tps)
	})
}

func advanceClock(c *components.ClockData, tps int) {
	if tps <= 0 {
		// SyncWithFPS or not running yet
		tps = cfg.Simulation.TPS
	}
	c.DT = 1 / float64(tps)
	c.Elapsed += c.DT
	c.Ticks++
}

// frameDT returns the last tick length, 0 before the first tick.
func frameDT(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).DT
}
