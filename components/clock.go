package components

import (
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/yohamta/donburi"
)

// ClockData carries the frame delta shared by every system in one update.
type ClockData struct {
	*motion.Clock
	Delta float64 // seconds, already clamped
}

var Clock = donburi.NewComponentType[ClockData]()
