package components

import (
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/yohamta/donburi"
)

// ViewportData is the logical screen size. Changed is raised by the scene when
// the window is resized and cleared once walkers have been re-clamped.
type ViewportData struct {
	Size    motion.Size
	Changed bool
}

var Viewport = donburi.NewComponentType[ViewportData]()
