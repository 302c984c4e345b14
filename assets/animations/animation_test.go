package animations

import "testing"

func TestAnimationAdvancesOncePerInterval(t *testing.T) {
	a := NewAnimation(6, 12)
	want := []int{1, 2, 3, 4, 5, 0, 1}
	for i, w := range want {
		a.Update(1.0 / 12)
		if got := a.Frame(); got != w {
			t.Fatalf("tick %d: frame = %d, want %d", i+1, got, w)
		}
	}
	if !a.Looped {
		t.Fatal("expected Looped after wrapping 5 -> 0")
	}
}

func TestAnimationCatchesUpAfterStall(t *testing.T) {
	a := NewAnimation(6, 8)
	// 0.5s at 8fps is four whole frames banked in one call.
	a.Update(0.5)
	if got := a.Frame(); got != 4 {
		t.Fatalf("frame = %d, want 4", got)
	}
	if acc := a.Accumulator(); acc != 0 {
		t.Fatalf("accumulator = %v, want 0", acc)
	}
}

func TestAnimationKeepsRemainder(t *testing.T) {
	a := NewAnimation(6, 8)
	a.Update(0.1875) // 1.5 frames
	if got := a.Frame(); got != 1 {
		t.Fatalf("frame = %d, want 1", got)
	}
	if acc := a.Accumulator(); acc != 0.0625 {
		t.Fatalf("accumulator = %v, want 0.0625", acc)
	}
	a.Update(0.0625)
	if got := a.Frame(); got != 2 {
		t.Fatalf("frame = %d, want 2", got)
	}
}

func TestAnimationIgnoresBadInput(t *testing.T) {
	tests := []struct {
		name string
		fps  float64
		dt   float64
	}{
		{"zero fps", 0, 1},
		{"negative fps", -12, 1},
		{"negative dt", 12, -1},
		{"zero dt", 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimation(6, tt.fps)
			a.Update(tt.dt)
			if a.Frame() != 0 || a.Accumulator() != 0 {
				t.Fatalf("frame=%d acc=%v, want untouched", a.Frame(), a.Accumulator())
			}
		})
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(6, 8)
	a.Update(0.8)
	a.Restart()
	if a.Frame() != 0 || a.Accumulator() != 0 || a.Looped {
		t.Fatalf("restart left frame=%d acc=%v looped=%v", a.Frame(), a.Accumulator(), a.Looped)
	}
}

func TestResetAccumulatorKeepsFrame(t *testing.T) {
	a := NewAnimation(6, 8)
	a.Update(0.1875)
	a.ResetAccumulator()
	if a.Frame() != 1 {
		t.Fatalf("frame = %d, want 1", a.Frame())
	}
	if a.Accumulator() != 0 {
		t.Fatalf("accumulator = %v, want 0", a.Accumulator())
	}
}
