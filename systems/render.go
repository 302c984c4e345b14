package systems

import (
	"math"

	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)
}

// DrawChickens paints each chicken's current frame with its top-left at the
// rounded walker position. The controller decides what to draw; this only
// decides how.
func DrawChickens(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		walker := components.Walker.Get(e)
		animData := components.Animation.Get(e)
		frame := walker.Last

		x := math.Round(frame.Position.X)
		y := math.Round(frame.Position.Y)

		img := animData.FrameImage(frame.Facing, frame.FrameIndex)
		if img == nil {
			// Fallback to rectangle if the sprite sheet is unavailable
			w := float64(animData.FrameWidth) * animData.Scale
			h := float64(animData.FrameHeight) * animData.Scale
			vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.FallbackColor, false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterNearest
		drawOp.GeoM.Scale(animData.Scale, animData.Scale)
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(img, drawOp)
	})
}
