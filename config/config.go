package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; balls, debug and HUD draw in system order.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	Title  string
}

// SimulationConfig holds frame-clock knobs. Damping lives in the scene file.
type SimulationConfig struct {
	TPS int // ebiten ticks per second
}

// WorldConfig bounds the resolv space. World coordinates are centred on the
// origin; the space is shifted by the half extents so all cells are positive.
type WorldConfig struct {
	HalfWidth  float64
	HalfHeight float64
	CellSize   int
}

type CameraConfig struct {
	Zoom float64 // screen pixels per world unit
}

type DebugConfig struct {
	Overlay bool // draw resolv bounds and the HUD (toggled with F3, can be overridden by CLI flags)
}

type HUDConfig struct {
	Margin      float64
	LineHeight  float64
	TitleHeight float64
	TextColor   color.RGBA
	PanelColor  color.RGBA
}

type ContactConfig struct {
	Highlight color.RGBA // outline drawn around the follower while it overlaps the main ball
}

type SpawnConfig struct {
	Duration float32 // seconds for a ball to grow from 0 to full size
}

var C *Config
var Simulation SimulationConfig
var World WorldConfig
var Camera CameraConfig
var Debug DebugConfig
var HUD HUDConfig
var Contact ContactConfig
var Spawn SpawnConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Background   = color.RGBA{R: 18, G: 18, B: 24, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DebugCyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "followball",
	}

	Simulation = SimulationConfig{
		TPS: 60,
	}

	World = WorldConfig{
		HalfWidth:  1280,
		HalfHeight: 720,
		CellSize:   16,
	}

	Camera = CameraConfig{
		Zoom: 1.0,
	}

	Debug = DebugConfig{
		Overlay: false,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  16,
		TitleHeight: 20,
		TextColor:   White,
		PanelColor:  BlackOverlay,
	}

	Contact = ContactConfig{
		Highlight: Yellow,
	}

	Spawn = SpawnConfig{
		Duration: 0.35,
	}
}
