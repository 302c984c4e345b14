package factory

import (
	"github.com/automoto/chickenwalk/assets"
	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/logger"
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenerateAnimations cuts every configured sprite sheet into frameCount frames.
// A sheet that cannot be loaded is logged and left out, so the chicken still
// walks and is drawn as a fallback box for that facing.
func GenerateAnimations(frameWidth, frameHeight, frameCount int, scale float64) *components.AnimationData {
	animData := &components.AnimationData{
		CachedFrames: make(map[motion.Facing][]*ebiten.Image),
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		Scale:        scale,
	}

	for facing, sheet := range cfg.SpriteSheets {
		frames := make([]*ebiten.Image, 0, frameCount)
		for i := 0; i < frameCount; i++ {
			srcRect := motion.Frame{FrameIndex: i}.SourceRect(frameWidth, frameHeight)
			img, err := assets.GetFrame(sheet, i, srcRect)
			if err != nil {
				logger.Log.WithError(err).WithField("facing", facing).Warn("sprite sheet unavailable, drawing fallback box")
				frames = nil
				break
			}
			frames = append(frames, img)
		}
		if frames != nil {
			animData.CachedFrames[facing] = frames
		}
	}

	return animData
}

