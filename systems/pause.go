package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// WithFocusCheck skips system while the window is unfocused, the way a browser
// stops animation frames in a background tab. The Clock keeps sampling, so the
// first delta after refocus is capped rather than replayed.
func WithFocusCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if !ebiten.IsFocused() {
			return
		}
		system(ecs)
	}
}
