package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MarkerData is the fading ring drawn where the user clicked.
type MarkerData struct {
	Position math.Vec2
	Radius   *gween.Tween
	Alpha    *gween.Tween

	// Current tween values
	CurrentRadius float32
	CurrentAlpha  float32
	Done          bool
}

var Marker = donburi.NewComponentType[MarkerData]()
