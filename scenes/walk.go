package scenes

import (
	"sync"

	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/logger"
	"github.com/automoto/chickenwalk/systems"
	"github.com/automoto/chickenwalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WalkScene is the single screen: one chicken that walks to wherever the
// user clicks.
type WalkScene struct {
	ecs    *ecs.ECS
	width  int
	height int
	once   sync.Once
}

func NewWalkScene() *WalkScene {
	return &WalkScene{width: cfg.C.Width, height: cfg.C.Height}
}

func (ws *WalkScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WalkScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		screen.Fill(cfg.UI.BackgroundColor)
		return
	}
	ws.ecs.Draw(screen)
}

// Resize is called from Game.Layout with the logical screen size.
func (ws *WalkScene) Resize(width, height int) {
	ws.width, ws.height = width, height
	if ws.ecs == nil {
		return
	}
	systems.ResizeViewport(ws.ecs, width, height)
}

func (ws *WalkScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// The clock runs first so every system sees the same delta
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateViewport)
	ecs.AddSystem(systems.WithFocusCheck(systems.UpdateWalkers))
	ecs.AddSystem(systems.WithFocusCheck(systems.UpdateMarkers))

	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawMarkers)
	ecs.AddRenderer(cfg.Default, systems.DrawChickens)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = ecs

	viewport := systems.GetOrCreateViewport(ws.ecs, ws.width, ws.height)
	systems.GetOrCreateClock(ws.ecs)
	systems.GetOrCreateInput(ws.ecs)
	systems.GetOrCreateSettings(ws.ecs)

	// Start in the middle of the window
	x := viewport.Size.Width / 2
	y := viewport.Size.Height / 2
	factory.CreateChicken(ws.ecs, x, y, viewport.Size)

	logger.Log.WithField("x", x).WithField("y", y).Info("chicken spawned")
}
