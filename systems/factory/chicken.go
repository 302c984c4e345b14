package factory

import (
	"github.com/automoto/chickenwalk/archetypes"
	"github.com/automoto/chickenwalk/components"
	cfg "github.com/automoto/chickenwalk/config"
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/automoto/chickenwalk/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateChicken spawns a walker whose top-left starts at (x, y), clamped into viewport.
func CreateChicken(ecs *ecs.ECS, x, y float64, viewport motion.Size) *donburi.Entry {
	chicken := archetypes.Chicken.Spawn(ecs)

	params := cfg.Chicken.Params()
	walker := motion.NewWalker(params, math.Vec2{X: x, Y: y}, viewport)
	components.Walker.SetValue(chicken, components.WalkerData{
		Walker: walker,
		Last:   walker.Frame(),
	})

	pos := walker.Position()
	obj := resolv.NewObject(pos.X, pos.Y, params.BoxWidth(), params.BoxHeight())
	obj.AddTags(tags.ResolvChicken)
	obj.Data = chicken
	components.Object.SetValue(chicken, components.ObjectData{Object: obj})

	components.Animation.Set(chicken, GenerateAnimations(cfg.Chicken.FrameWidth, cfg.Chicken.FrameHeight, cfg.Chicken.FrameCount, params.Scale))

	return chicken
}
