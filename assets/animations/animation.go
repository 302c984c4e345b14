package animations

// Animation cycles through FrameCount horizontally laid out frames at FPS
// frames per second. Elapsed time is banked in an accumulator and drained
// in fixed steps, so a stalled caller catches up instead of skipping.
type Animation struct {
	FrameCount  int
	FPS         float64
	accumulator float64
	frame       int
	Looped      bool // set once the cycle has wrapped back to frame 0
}

func (a *Animation) Update(dt float64) {
	if a.FPS <= 0 || a.FrameCount <= 0 || dt <= 0 {
		return
	}

	frameTime := 1 / a.FPS
	a.accumulator += dt
	for a.accumulator >= frameTime {
		a.accumulator -= frameTime
		a.frame = (a.frame + 1) % a.FrameCount
		if a.frame == 0 {
			a.Looped = true
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Accumulator() float64 {
	return a.accumulator
}

// ResetAccumulator drops banked time but keeps the current frame.
func (a *Animation) ResetAccumulator() {
	a.accumulator = 0
}

// Restart returns to the idle pose.
func (a *Animation) Restart() {
	a.frame = 0
	a.accumulator = 0
	a.Looped = false
}

func NewAnimation(frameCount int, fps float64) *Animation {
	if frameCount < 1 {
		frameCount = 1
	}
	return &Animation{
		FrameCount: frameCount,
		FPS:        fps,
	}
}
