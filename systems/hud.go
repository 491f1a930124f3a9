package systems

import (
	"fmt"

	"github.com/automoto/followball/components"
	cfg "github.com/automoto/followball/config"
	"github.com/automoto/followball/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudPanelWidth = 300

// DrawHUD prints the filter coefficients and both entity states.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Overlay || !fonts.Loaded(fonts.HUD) {
		return
	}
	rigEntry, ok := components.Rig.First(ecs.World)
	if !ok {
		return
	}
	rig := components.Rig.Get(rigEntry)
	clock := components.Clock.Get(rigEntry)

	lines := hudLines(rig, clock)

	margin := cfg.HUD.Margin
	panelHeight := float64(len(lines))*cfg.HUD.LineHeight + margin

	top := margin
	if fonts.Loaded(fonts.HUDTitle) {
		top += cfg.HUD.TitleHeight
		panelHeight += cfg.HUD.TitleHeight
	}
	vector.FillRect(screen, float32(margin), float32(margin),
		hudPanelWidth, float32(panelHeight), cfg.HUD.PanelColor, false)

	if fonts.Loaded(fonts.HUDTitle) {
		text.Draw(screen, cfg.C.Title, fonts.HUDTitle.Get(), int(margin*1.5), int(top), cfg.HUD.TextColor)
	}
	face := fonts.HUD.Get()
	for i, line := range lines {
		y := top + float64(i+1)*cfg.HUD.LineHeight
		text.Draw(screen, line, face, int(margin*1.5), int(y), cfg.HUD.TextColor)
	}
}

func hudLines(rig *components.RigData, clock *components.ClockData) []string {
	c := rig.Driver.Coefficients()
	main := rig.Driver.Main()
	follower := rig.Driver.Follower()
	return []string{
		fmt.Sprintf("k1 %.5f  k2 %.5f  k3 %.5f", c.K1, c.K2, c.K3),
		fmt.Sprintf("main     (%7.1f, %7.1f)", main.Position.X, main.Position.Y),
		fmt.Sprintf("main v   (%7.1f, %7.1f)", main.Velocity.X, main.Velocity.Y),
		fmt.Sprintf("follower (%7.1f, %7.1f)", follower.Position.X, follower.Position.Y),
		fmt.Sprintf("follow v (%7.1f, %7.1f)", follower.Velocity.X, follower.Velocity.Y),
		fmt.Sprintf("contact  %v", touching(rig.Follower)),
		fmt.Sprintf("t %.1fs  tick %d  tps %.0f  [F3]", clock.Elapsed, clock.Ticks, ebiten.ActualTPS()),
	}
}

func touching(e *donburi.Entry) bool {
	if e == nil || !e.Valid() || !e.HasComponent(components.Ball) {
		return false
	}
	return components.Ball.Get(e).Touching
}
