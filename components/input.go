package components

import (
	"github.com/automoto/chickenwalk/shared/motion"
	"github.com/yohamta/donburi"
)

// InputMethod represents the device that produced the latest click
type InputMethod int

const (
	InputMouse InputMethod = iota
	InputTouch
)

func (m InputMethod) String() string {
	if m == InputTouch {
		return "touch"
	}
	return "mouse"
}

// InputData buffers the latest click until the walkers consume it.
type InputData struct {
	Pending         motion.PendingTarget
	LastInputMethod InputMethod
	Clicks          int // accepted clicks this session, for the debug overlay
}

var Input = donburi.NewComponentType[InputData]()
