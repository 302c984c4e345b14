package config

import "github.com/automoto/chickenwalk/shared/motion"

// SpriteSheets maps a facing to its sprite sheet file name. Each sheet holds
// Chicken.FrameCount frames side by side; frame 0 is the idle pose.
var SpriteSheets = map[motion.Facing]string{
	motion.FacingRight: "chicken-right.png",
	motion.FacingLeft:  "chicken-left.png",
}
