package motion

// BoundsPolicy decides what happens when the walker would leave the viewport.
type BoundsPolicy int

const (
	// BoundsViewport keeps the whole sprite box inside the viewport.
	BoundsViewport BoundsPolicy = iota
	// BoundsNone leaves the position unconstrained.
	BoundsNone
)

// Params are the static tuning values of a walker.
type Params struct {
	Speed          float64 // px/s
	ArrivalEpsilon float64 // px
	AnimationFPS   float64
	FrameWidth     int
	FrameHeight    int
	FrameCount     int
	Scale          float64 // display scale applied to the sprite box
	Bounds         BoundsPolicy
}

func DefaultParams() Params {
	return Params{
		Speed:          180,
		ArrivalEpsilon: 2,
		AnimationFPS:   12,
		FrameWidth:     24,
		FrameHeight:    24,
		FrameCount:     6,
		Scale:          1,
		Bounds:         BoundsViewport,
	}
}

func (p Params) sanitized() Params {
	if p.Speed < 0 {
		p.Speed = 0
	}
	if p.ArrivalEpsilon < 0 {
		p.ArrivalEpsilon = 0
	}
	if p.FrameCount < 1 {
		p.FrameCount = 1
	}
	if p.Scale <= 0 {
		p.Scale = 1
	}
	return p
}

// BoxWidth is the on-screen width of one frame.
func (p Params) BoxWidth() float64 {
	return float64(p.FrameWidth) * p.Scale
}

// BoxHeight is the on-screen height of one frame.
func (p Params) BoxHeight() float64 {
	return float64(p.FrameHeight) * p.Scale
}

// Size is a viewport extent in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) known() bool {
	return s.Width > 0 && s.Height > 0
}
