package systems

import (
	"github.com/automoto/chickenwalk/components"
	"github.com/automoto/chickenwalk/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock samples the wall clock once per display refresh. Must run first
// so every later system sees the same delta.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs)
	clock.Delta = clock.Elapsed()
}

// GetOrCreateClock returns the singleton Clock component, creating if needed.
func GetOrCreateClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		entry = factory.CreateClock(ecs)
	}
	return components.Clock.Get(entry)
}
