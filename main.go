package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/followball/assets"
	"github.com/automoto/followball/config"
	"github.com/automoto/followball/fonts"
	"github.com/automoto/followball/scenes"
	"github.com/automoto/followball/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene *config.Scene) *Game {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 12); err != nil {
		log.Printf("Warning: HUD disabled: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.HUDTitle, goregular.TTF, 16); err != nil {
		log.Printf("Warning: HUD title disabled: %v", err)
	}

	return &Game{
		scene: scenes.NewFollowScene(scene),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// loadScene reads the scene from disk when path is set, otherwise the
// bundled default.
func loadScene(path string) (*config.Scene, error) {
	if path == "" {
		return assets.LoadDefaultScene()
	}
	return config.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

func main() {
	configPath := flag.String("config", "", "Scene config YAML (default: bundled main.config.yaml)")
	debug := flag.Bool("debug", false, "Start with the debug overlay shown")
	flag.Parse()

	// Nothing runs until the scene is valid; no defaults are substituted.
	scene, err := loadScene(*configPath)
	if err != nil {
		log.Fatalf("Failed to load scene config: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *debug {
		config.Debug.Overlay = true
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.Simulation.TPS)

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
