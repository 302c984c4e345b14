package systems

import (
	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the display toggle keys and persists changes.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	changed := false

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.Debug = !settings.Debug
		changed = true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = factory.CreateSettings(ecs, cfg.Debug.Overlay, ebiten.IsFullscreen())
	}
	return components.Settings.Get(entry)
}
