package factory

import (
	"github.com/automoto/chickenwalk/archetypes"
	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateViewport(ecs *ecs.ECS, width, height int) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(viewport, components.ViewportData{
		Size: motion.Size{Width: float64(width), Height: float64(height)},
	})
	return viewport
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	input := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(input, components.InputData{})
	return input
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{
		Clock: motion.NewClock(cfg.Chicken.MaxElapsed),
	})
	return clock
}

func CreateSettings(ecs *ecs.ECS, debug, fullscreen bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Debug:      debug,
		Fullscreen: fullscreen,
	})
	return settings
}
