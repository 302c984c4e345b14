package systems

import (
	"fmt"

	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/fonts"
	"github.com/automoto/chickenwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines each chicken's box, marks its target and prints its state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	input := GetOrCreateInput(ecs)
	clock := GetOrCreateClock(ecs)
	lineY := cfg.UI.HUDMargin

	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		walker := components.Walker.Get(e)
		frame := walker.Last

		if e.HasComponent(components.Object) {
			o := components.Object.Get(e)
			vector.StrokeRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), 1, cfg.UI.DebugBoxColor, false)
		}

		target := walker.Target()
		tx, ty := float32(target.X), float32(target.Y)
		vector.StrokeLine(screen, tx-4, ty, tx+4, ty, 1, cfg.UI.DebugTargetColor, false)
		vector.StrokeLine(screen, tx, ty-4, tx, ty+4, 1, cfg.UI.DebugTargetColor, false)

		line := fmt.Sprintf("pos %.1f,%.1f  target %.1f,%.1f  facing %s  frame %d  walking %v",
			frame.Position.X, frame.Position.Y, target.X, target.Y, frame.Facing, frame.FrameIndex, frame.Walking)
		lineY = drawHUDLine(screen, line, lineY)
	})

	viewport := GetOrCreateViewport(ecs, cfg.C.Width, cfg.C.Height)
	line := fmt.Sprintf("dt %.1fms  fps %.0f  viewport %.0fx%.0f  clicks %d (%s)",
		clock.Delta*1000, ebiten.ActualFPS(), viewport.Size.Width, viewport.Size.Height, input.Clicks, input.LastInputMethod)
	drawHUDLine(screen, line, lineY)
}

// drawHUDLine prints one line of text and returns the y of the next line.
func drawHUDLine(screen *ebiten.Image, s string, y int) int {
	x := cfg.UI.HUDMargin
	if !fonts.Loaded(fonts.HUD) {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return y + 16
	}
	lineHeight := int(cfg.UI.HUDFontSize) + 4
	text.Draw(screen, s, fonts.HUD.Get(), x, y+lineHeight, cfg.UI.HUDTextColor)
	return y + lineHeight
}
