package main

import (
	"flag"
	"image"

	"github.com/automoto/chickenwalk/assets"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/fonts"
	"github.com/automoto/chickenwalk/logger"
	"github.com/automoto/chickenwalk/scenes"
	"github.com/automoto/chickenwalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
	if !g.bounds.Empty() {
		g.scene.Resize(g.bounds.Dx(), g.bounds.Dy())
	}
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(cfg.UI.HUDFontSize); err != nil {
		logger.Log.WithError(err).Warn("HUD font unavailable, using debug print")
	}

	g := &Game{}
	g.ChangeScene(scenes.NewWalkScene())
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window: the logical screen is the window size, so clicks
// and the chicken share one pixel space.
func (g *Game) Layout(width, height int) (int, int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	bounds := image.Rect(0, 0, width, height)
	if bounds != g.bounds {
		g.bounds = bounds
		g.scene.Resize(width, height)
	}
	return width, height
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	spriteDir := flag.String("sprites", "", "Load chicken-right.png and chicken-left.png from this directory")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Log format (text, json)")
	flag.Parse()

	logger.Init(*logLevel, *logFormat)

	if *configPath != "" {
		if err := cfg.LoadFile(*configPath); err != nil {
			logger.Log.WithError(err).Fatal("invalid configuration")
		}
	}
	if *debug {
		cfg.Debug.Overlay = true
	}
	if *spriteDir != "" {
		cfg.Chicken.SpriteDir = *spriteDir
	}
	if cfg.Chicken.SpriteDir != "" {
		assets.UseSpriteDir(cfg.Chicken.SpriteDir)
	}

	ebiten.SetWindowSize(cfg.C.Width, cfg.C.Height)
	ebiten.SetWindowTitle(cfg.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One Update per display refresh, like an animation-frame callback
	ebiten.SetTPS(ebiten.SyncWithFPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Log.WithError(err).Warn("could not initialize persistence")
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
