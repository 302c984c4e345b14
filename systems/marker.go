package systems

import (
	"image/color"

	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for finished markers to avoid allocations
var finishedMarkers []donburi.Entity

// UpdateMarkers advances the click marker tweens and removes finished markers.
func UpdateMarkers(ecs *ecs.ECS) {
	dt := float32(GetOrCreateClock(ecs).Delta)
	finishedMarkers = finishedMarkers[:0]

	tags.Marker.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Marker.Get(e)
		radius, radiusDone := m.Radius.Update(dt)
		alpha, alphaDone := m.Alpha.Update(dt)
		m.CurrentRadius = radius
		m.CurrentAlpha = alpha
		m.Done = radiusDone && alphaDone
		if m.Done {
			finishedMarkers = append(finishedMarkers, e.Entity())
		}
	})

	for _, entity := range finishedMarkers {
		ecs.World.Remove(entity)
	}
}

func DrawMarkers(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Marker.Each(ecs.World, func(e *donburi.Entry) {
		m := components.Marker.Get(e)
		if m.Done || m.CurrentAlpha <= 0 {
			return
		}
		c := fade(cfg.Marker.Color, m.CurrentAlpha)
		vector.StrokeCircle(screen, float32(m.Position.X), float32(m.Position.Y), m.CurrentRadius, float32(cfg.Marker.StrokeWidth), c, true)
	})
}

// fade scales a premultiplied color by alpha in [0, 1].
func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
