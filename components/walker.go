package components

import (
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/yohamta/donburi"
)

// WalkerData owns one chicken's motion/animation controller.
type WalkerData struct {
	*motion.Walker
	Last motion.Frame // frame emitted by the latest tick
}

var Walker = donburi.NewComponentType[WalkerData]()
