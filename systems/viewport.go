package systems

import (
	"github.com/automoto/chickenwalk/components"
	"github.com/automoto/chickenwalk/logger"
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/automoto/chickenwalk/systems/factory"
	"github.com/automoto/chickenwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ResizeViewport records a new logical screen size. Walkers are re-clamped by
// UpdateViewport on the next update.
func ResizeViewport(ecs *ecs.ECS, width, height int) {
	viewport := GetOrCreateViewport(ecs, width, height)
	size := motion.Size{Width: float64(width), Height: float64(height)}
	if viewport.Size == size {
		return
	}
	viewport.Size = size
	viewport.Changed = true
}

// UpdateViewport re-clamps every chicken after a resize. Must run before
// UpdateWalkers so a tick never sees stale extents.
func UpdateViewport(ecs *ecs.ECS) {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		return
	}
	viewport := components.Viewport.Get(entry)
	if !viewport.Changed {
		return
	}
	viewport.Changed = false

	logger.Log.WithField("width", viewport.Size.Width).WithField("height", viewport.Size.Height).Debug("viewport resized")

	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		walker := components.Walker.Get(e)
		walker.Resize(viewport.Size)
		walker.Last = walker.Frame()
		syncObject(e, walker)
	})
}

// GetOrCreateViewport returns the singleton Viewport component, creating it
// with the given size if needed.
func GetOrCreateViewport(ecs *ecs.ECS, width, height int) *components.ViewportData {
	entry, ok := components.Viewport.First(ecs.World)
	if !ok {
		entry = factory.CreateViewport(ecs, width, height)
	}
	return components.Viewport.Get(entry)
}
