// Package motion holds the click-to-walk controller. It has no rendering or
// input dependencies: callers feed it targets and elapsed time and draw the
// Frame it returns.
package motion

import (
	"image"

	"github.com/automoto/chickenwalk/assets/animations"
	"github.com/automoto/chickenwalk/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Frame is what a renderer needs to paint the walker for one display refresh.
type Frame struct {
	Position   math.Vec2 // top-left of the sprite box
	Facing     Facing
	FrameIndex int
	Walking    bool
}

// SourceRect returns the region of a horizontal sprite sheet holding this frame.
func (f Frame) SourceRect(frameWidth, frameHeight int) image.Rectangle {
	sx := f.FrameIndex * frameWidth
	return image.Rect(sx, 0, sx+frameWidth, frameHeight)
}

// Walker moves toward the last commanded target at constant speed and cycles
// a walking animation while it does.
//
// Facing follows the sign of the horizontal distance to the target. It is
// updated on SetTarget and again on every tick, and any change of facing
// drops the banked animation time.
type Walker struct {
	params   Params
	position math.Vec2
	target   math.Vec2
	facing   Facing
	walking  bool
	anim     *animations.Animation
	viewport Size
}

func NewWalker(p Params, start math.Vec2, viewport Size) *Walker {
	p = p.sanitized()
	w := &Walker{
		params:   p,
		facing:   FacingRight,
		anim:     animations.NewAnimation(p.FrameCount, p.AnimationFPS),
		viewport: viewport,
	}
	w.position = w.clamp(start)
	w.target = w.position
	return w
}

func (w *Walker) Params() Params       { return w.params }
func (w *Walker) Position() math.Vec2  { return w.position }
func (w *Walker) Target() math.Vec2    { return w.target }
func (w *Walker) Facing() Facing       { return w.facing }
func (w *Walker) Walking() bool        { return w.walking }
func (w *Walker) FrameIndex() int      { return w.anim.Frame() }
func (w *Walker) Accumulator() float64 { return w.anim.Accumulator() }
func (w *Walker) Viewport() Size       { return w.viewport }

func (w *Walker) Frame() Frame {
	return Frame{
		Position:   w.position,
		Facing:     w.facing,
		FrameIndex: w.anim.Frame(),
		Walking:    w.walking,
	}
}

// SetTarget commands a new destination. The point is stored as given; bounds
// only apply to the position during Tick.
func (w *Walker) SetTarget(p math.Vec2) {
	w.target = p
	w.faceToward(p.X)
	w.walking = p != w.position
	if !w.walking {
		w.anim.Restart()
	}
}

// Tick advances the walker by elapsed seconds of simulated time. Negative or
// NaN deltas count as zero; capping stalls is the Clock's job.
func (w *Walker) Tick(elapsed float64) Frame {
	elapsed = gamemath.ClampElapsed(elapsed, 0)

	dx := w.target.X - w.position.X
	dy := w.target.Y - w.position.Y
	if dx*dx+dy*dy <= w.params.ArrivalEpsilon*w.params.ArrivalEpsilon {
		w.position = w.clamp(w.target)
		w.walking = false
		w.anim.Restart()
		return w.Frame()
	}

	w.walking = true
	w.faceToward(w.target.X)

	x, y, _ := gamemath.StepToward(w.position.X, w.position.Y, w.target.X, w.target.Y, w.params.Speed*elapsed)
	w.position = w.clamp(math.Vec2{X: x, Y: y})

	w.anim.Update(elapsed)
	return w.Frame()
}

// Resize re-clamps position and target into a new viewport. Facing and frame
// are left alone.
func (w *Walker) Resize(viewport Size) {
	w.viewport = viewport
	w.position = w.clamp(w.position)
	w.target = w.clamp(w.target)
}

func (w *Walker) faceToward(x float64) {
	var next Facing
	switch gamemath.HorizontalSign(w.position.X, x) {
	case 1:
		next = FacingRight
	case -1:
		next = FacingLeft
	default:
		return
	}
	if next == w.facing {
		return
	}
	w.facing = next
	w.anim.ResetAccumulator()
	if !w.walking {
		w.anim.Restart()
	}
}

// clamp applies the bounds policy. An unknown (zero) viewport does not clamp.
func (w *Walker) clamp(p math.Vec2) math.Vec2 {
	if w.params.Bounds != BoundsViewport || !w.viewport.known() {
		return p
	}
	return math.Vec2{
		X: gamemath.Clamp(p.X, 0, w.viewport.Width-w.params.BoxWidth()),
		Y: gamemath.Clamp(p.Y, 0, w.viewport.Height-w.params.BoxHeight()),
	}
}
