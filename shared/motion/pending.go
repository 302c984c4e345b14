package motion

import "github.com/yohamta/donburi/features/math"

// PendingTarget is a single-slot command buffer between input handling and
// the tick. A newer click overwrites an unconsumed one.
type PendingTarget struct {
	point math.Vec2
	set   bool
}

func (p *PendingTarget) Offer(point math.Vec2) {
	p.point = point
	p.set = true
}

// Take empties the slot.
func (p *PendingTarget) Take() (math.Vec2, bool) {
	if !p.set {
		return math.Vec2{}, false
	}
	p.set = false
	return p.point, true
}

func (p *PendingTarget) Pending() bool {
	return p.set
}

