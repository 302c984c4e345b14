package factory

import (
	"github.com/automoto/chickenwalk/archetypes"
	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateMarker spawns a ring at a click point that grows and fades out.
func CreateMarker(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)

	duration := float32(cfg.Marker.Duration)
	components.Marker.SetValue(marker, components.MarkerData{
		Position:      at,
		Radius:        gween.New(float32(cfg.Marker.StartRadius), float32(cfg.Marker.EndRadius), duration, ease.OutQuad),
		Alpha:         gween.New(1, 0, duration, ease.Linear),
		CurrentRadius: float32(cfg.Marker.StartRadius),
		CurrentAlpha:  1,
	})

	return marker
}
