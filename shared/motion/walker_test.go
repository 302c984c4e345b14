package motion

import (
	stdmath "math"
	"testing"

	"github.com/yohamta/donburi/features/math"
)

func unbounded() Params {
	p := DefaultParams()
	p.Bounds = BoundsNone
	return p
}

func vec(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}

func dist(a, b math.Vec2) float64 {
	return stdmath.Hypot(b.X-a.X, b.Y-a.Y)
}

func TestExactArrival(t *testing.T) {
	w := NewWalker(unbounded(), vec(100, 100), Size{})
	w.SetTarget(vec(100, 100))
	if w.Walking() {
		t.Fatal("SetTarget to current position should not start walking")
	}

	f := w.Tick(0.016)
	if f.Walking || f.FrameIndex != 0 || f.Position != vec(100, 100) {
		t.Fatalf("got %+v, want idle at (100,100) on frame 0", f)
	}
}

func TestArrivalIsIdempotent(t *testing.T) {
	w := NewWalker(unbounded(), vec(0, 0), Size{})
	w.SetTarget(vec(1.5, 0))
	if !w.Walking() {
		t.Fatal("expected walking after SetTarget")
	}

	f := w.Tick(0.016)
	if f.Walking || f.FrameIndex != 0 || f.Position != vec(1.5, 0) {
		t.Fatalf("got %+v, want snapped to target", f)
	}

	for i := 0; i < 5; i++ {
		next := w.Tick(0.016)
		if next != f {
			t.Fatalf("tick %d changed idle state: %+v -> %+v", i, f, next)
		}
		if w.Accumulator() != 0 {
			t.Fatalf("tick %d: accumulator = %v, want 0", i, w.Accumulator())
		}
	}
}

func TestRightwardWalk(t *testing.T) {
	w := NewWalker(unbounded(), vec(0, 0), Size{})
	w.SetTarget(vec(360, 0))

	f := w.Tick(1.0)
	if f.Position.X != 180 || f.Position.Y != 0 {
		t.Fatalf("position = %+v, want (180, 0)", f.Position)
	}
	if f.Facing != FacingRight {
		t.Fatalf("facing = %v, want right", f.Facing)
	}
	if !f.Walking {
		t.Fatal("expected walking")
	}
}

func TestDirectionFlipMidFlight(t *testing.T) {
	w := NewWalker(unbounded(), vec(0, 0), Size{})
	w.SetTarget(vec(500, 0))
	for i := 0; i < 3; i++ {
		w.Tick(0.05)
	}
	if w.Facing() != FacingRight {
		t.Fatalf("facing = %v before flip, want right", w.Facing())
	}
	before := w.Position().X

	w.SetTarget(vec(-100, 0))
	if w.Facing() != FacingLeft {
		t.Fatalf("facing = %v right after click, want left", w.Facing())
	}

	f := w.Tick(0.05)
	if f.Facing != FacingLeft {
		t.Fatalf("facing = %v after tick, want left", f.Facing)
	}
	if f.Position.X >= before {
		t.Fatalf("x = %v, want less than %v", f.Position.X, before)
	}
}

func TestFacingPerClick(t *testing.T) {
	tests := []struct {
		name   string
		target math.Vec2
		want   Facing
	}{
		{"right", vec(150, 50), FacingRight},
		{"left", vec(10, 50), FacingLeft},
		{"straight down keeps facing", vec(100, 300), FacingRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWalker(unbounded(), vec(100, 50), Size{})
			w.SetTarget(tt.target)
			if w.Facing() != tt.want {
				t.Fatalf("facing after click = %v, want %v", w.Facing(), tt.want)
			}
			w.Tick(0.016)
			if w.Facing() != tt.want {
				t.Fatalf("facing after tick = %v, want %v", w.Facing(), tt.want)
			}
		})
	}
}

func TestFacingChangeDropsBankedTime(t *testing.T) {
	p := unbounded()
	p.AnimationFPS = 8
	w := NewWalker(p, vec(0, 0), Size{})
	w.SetTarget(vec(1000, 0))
	for i := 0; i < 5; i++ {
		w.Tick(1.0 / 32)
	}
	frame := w.FrameIndex()
	if frame != 1 || w.Accumulator() == 0 {
		t.Fatalf("frame=%d acc=%v, want frame 1 with banked time", frame, w.Accumulator())
	}

	w.SetTarget(vec(-1000, 0))
	if w.Accumulator() != 0 {
		t.Fatalf("accumulator = %v after flip, want 0", w.Accumulator())
	}
	if w.FrameIndex() != frame {
		t.Fatalf("frame = %d after flip, want %d", w.FrameIndex(), frame)
	}
}

func TestAnimationCadence(t *testing.T) {
	p := unbounded()
	p.AnimationFPS = 12
	p.FrameCount = 6
	w := NewWalker(p, vec(0, 0), Size{})
	w.SetTarget(vec(10000, 0))

	want := []int{1, 2, 3, 4, 5, 0, 1, 2}
	for i, wf := range want {
		f := w.Tick(1.0 / 12)
		if f.FrameIndex != wf {
			t.Fatalf("tick %d: frame = %d, want %d", i+1, f.FrameIndex, wf)
		}
	}
}

func TestFrameCyclingDeterminism(t *testing.T) {
	p := unbounded()
	p.AnimationFPS = 8
	p.FrameCount = 6
	const dt = 1.0 / 32
	w := NewWalker(p, vec(0, 0), Size{})
	w.SetTarget(vec(10000, 0))

	for k := 1; k <= 60; k++ {
		f := w.Tick(dt)
		if !f.Walking {
			t.Fatalf("tick %d: stopped walking", k)
		}
		want := int(stdmath.Floor(float64(k)*dt*p.AnimationFPS)) % p.FrameCount
		if f.FrameIndex != want {
			t.Fatalf("tick %d: frame = %d, want %d", k, f.FrameIndex, want)
		}
	}
}

func TestMonotonicProgress(t *testing.T) {
	w := NewWalker(unbounded(), vec(10, 20), Size{})
	target := vec(400, -300)
	w.SetTarget(target)

	deltas := []float64{0.016, 0.033, -0.5, 0, 0.05, 0.007, stdmath.NaN(), 0.016}
	prev := dist(w.Position(), target)
	for i := 0; w.Walking() && i < 400; i++ {
		w.Tick(deltas[i%len(deltas)])
		d := dist(w.Position(), target)
		if d > prev {
			t.Fatalf("tick %d: distance grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if w.Walking() || w.Position() != target {
		t.Fatalf("never arrived: pos=%+v walking=%v", w.Position(), w.Walking())
	}
}

func TestNegativeElapsedIsZero(t *testing.T) {
	w := NewWalker(unbounded(), vec(0, 0), Size{})
	w.SetTarget(vec(100, 0))

	f := w.Tick(-1)
	if f.Position != vec(0, 0) || f.FrameIndex != 0 || w.Accumulator() != 0 {
		t.Fatalf("negative tick changed state: %+v acc=%v", f, w.Accumulator())
	}
	if !f.Walking {
		t.Fatal("expected walking to remain true")
	}
}

func TestBoundsContainment(t *testing.T) {
	viewport := Size{Width: 200, Height: 100}
	w := NewWalker(DefaultParams(), vec(90, 40), viewport)
	maxX := viewport.Width - 24
	maxY := viewport.Height - 24

	targets := []math.Vec2{vec(500, -50), vec(-80, 400), vec(150, 60)}
	for _, target := range targets {
		w.SetTarget(target)
		for i := 0; i < 120; i++ {
			f := w.Tick(0.05)
			if f.Position.X < 0 || f.Position.X > maxX || f.Position.Y < 0 || f.Position.Y > maxY {
				t.Fatalf("target %+v tick %d: position %+v left [0,%v]x[0,%v]", target, i, f.Position, maxX, maxY)
			}
		}
	}
}

func TestArrivalSnapStaysInBounds(t *testing.T) {
	w := NewWalker(DefaultParams(), vec(100, 50), Size{Width: 200, Height: 100})
	// One pixel past the reachable edge, inside the arrival radius of it.
	w.SetTarget(vec(177, 77))

	var f Frame
	for i := 0; i < 60; i++ {
		f = w.Tick(0.05)
		if f.Position.X > 176 || f.Position.Y > 76 {
			t.Fatalf("tick %d: position %+v left [0,176]x[0,76]", i, f.Position)
		}
	}
	if f.Walking || f.Position != vec(176, 76) || f.FrameIndex != 0 {
		t.Fatalf("got %+v, want idle at (176, 76) on frame 0", f)
	}
}

func TestRetargetToPositionIdlesImmediately(t *testing.T) {
	w := NewWalker(unbounded(), vec(0, 0), Size{})
	w.SetTarget(vec(1000, 0))
	for i := 0; i < 3; i++ {
		w.Tick(1.0 / 12)
	}
	if w.FrameIndex() != 3 {
		t.Fatalf("frame = %d, want 3 mid-walk", w.FrameIndex())
	}

	w.SetTarget(w.Position())
	f := w.Frame()
	if f.Walking || f.FrameIndex != 0 || w.Accumulator() != 0 {
		t.Fatalf("got %+v acc=%v, want idle on frame 0", f, w.Accumulator())
	}
}

func TestClampedTargetStallsWhileWalking(t *testing.T) {
	w := NewWalker(DefaultParams(), vec(100, 50), Size{Width: 200, Height: 100})
	w.SetTarget(vec(190, 50))

	var f Frame
	for i := 0; i < 60; i++ {
		f = w.Tick(0.05)
	}
	if f.Position.X != 176 {
		t.Fatalf("x = %v, want pinned at 176", f.Position.X)
	}
	if !f.Walking {
		t.Fatal("expected walking to stay true against the edge")
	}
}

func TestScaleWidensBounds(t *testing.T) {
	p := DefaultParams()
	p.Scale = 2
	w := NewWalker(p, vec(500, 500), Size{Width: 200, Height: 100})
	if got := w.Position(); got != vec(152, 52) {
		t.Fatalf("start = %+v, want clamped to (152, 52)", got)
	}
}

func TestResize(t *testing.T) {
	w := NewWalker(DefaultParams(), vec(300, 200), Size{Width: 800, Height: 600})
	w.SetTarget(vec(700, 500))
	w.Tick(1.0 / 12)
	facing, frame := w.Facing(), w.FrameIndex()

	w.Resize(Size{Width: 320, Height: 240})
	if p := w.Position(); p.X > 296 || p.Y > 216 {
		t.Fatalf("position %+v outside resized viewport", p)
	}
	if tg := w.Target(); tg != vec(296, 216) {
		t.Fatalf("target = %+v, want (296, 216)", tg)
	}
	if w.Facing() != facing || w.FrameIndex() != frame {
		t.Fatalf("resize changed facing/frame: %v/%d -> %v/%d", facing, frame, w.Facing(), w.FrameIndex())
	}
}

func TestResizeIgnoredWithoutBounds(t *testing.T) {
	w := NewWalker(unbounded(), vec(300, 200), Size{})
	w.SetTarget(vec(-40, 900))
	w.Resize(Size{Width: 100, Height: 100})
	if w.Position() != vec(300, 200) || w.Target() != vec(-40, 900) {
		t.Fatalf("unbounded walker was clamped: pos=%+v target=%+v", w.Position(), w.Target())
	}
}

func TestSourceRect(t *testing.T) {
	f := Frame{FrameIndex: 3}
	r := f.SourceRect(24, 24)
	if r.Min.X != 72 || r.Min.Y != 0 || r.Dx() != 24 || r.Dy() != 24 {
		t.Fatalf("SourceRect = %v, want (72,0)-(96,24)", r)
	}
}

func TestFacingString(t *testing.T) {
	if FacingLeft.String() != "left" || FacingRight.String() != "right" {
		t.Fatalf("unexpected names %q %q", FacingLeft, FacingRight)
	}
	if FacingLeft.X() != -1 || FacingRight.X() != 1 {
		t.Fatal("unexpected unit directions")
	}
}
