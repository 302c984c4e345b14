package systems

import (
	"github.com/automoto/chickenwalk/components"
	"github.com/automoto/chickenwalk/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWalkers applies the pending click, if any, to every chicken and then
// ticks each one by the frame delta. The click is fully applied before any
// tick reads the target.
func UpdateWalkers(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	dt := GetOrCreateClock(ecs).Delta

	target, clicked := input.Pending.Take()

	tags.Chicken.Each(ecs.World, func(e *donburi.Entry) {
		walker := components.Walker.Get(e)
		if clicked {
			walker.SetTarget(target)
		}
		walker.Last = walker.Tick(dt)
		syncObject(e, walker)
	})
}

// syncObject mirrors the walker's position into its sprite box.
func syncObject(e *donburi.Entry, walker *components.WalkerData) {
	if !e.HasComponent(components.Object) {
		return
	}
	o := components.Object.Get(e)
	pos := walker.Position()
	o.X = pos.X
	o.Y = pos.Y
}
