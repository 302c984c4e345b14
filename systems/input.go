package systems

import (
	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/logger"
	"github.com/automoto/chickenwalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput turns the latest mouse click or touch into a pending target.
// Must run BEFORE UpdateWalkers in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	var (
		x, y    int
		clicked bool
	)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y = ebiten.CursorPosition()
		clicked = true
		input.LastInputMethod = components.InputMouse
	}

	// A touch in the same frame wins; it is the more recent gesture on touch devices.
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[len(touchIDs)-1])
		clicked = true
		input.LastInputMethod = components.InputTouch
	}

	if !clicked {
		return
	}

	point := math.Vec2{X: float64(x), Y: float64(y)}
	input.Pending.Offer(point)
	input.Clicks++
	logger.Log.WithField("x", x).WithField("y", y).WithField("method", input.LastInputMethod).Debug("target requested")

	if cfg.Marker.Enabled && cfg.Marker.Duration > 0 {
		factory.CreateMarker(ecs, point)
	}
}

// GetOrCreateInput returns the singleton Input component, creating if needed.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = factory.CreateInput(ecs)
	}
	return components.Input.Get(entry)
}
