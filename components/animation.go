package components

import (
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData holds the pre-cut frames of each facing's sprite sheet.
// A facing whose sheet failed to load has no entry; the renderer falls back
// to a plain box for it.
type AnimationData struct {
	CachedFrames map[motion.Facing][]*ebiten.Image
	FrameWidth   int
	FrameHeight  int
	Scale        float64
}

// FrameImage returns the image for a frame, or nil if it is not available.
func (a *AnimationData) FrameImage(facing motion.Facing, frame int) *ebiten.Image {
	frames := a.CachedFrames[facing]
	if frame < 0 || frame >= len(frames) {
		return nil
	}
	return frames[frame]
}

var Animation = donburi.NewComponentType[AnimationData]()
