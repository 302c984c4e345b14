package tags

import "github.com/yohamta/donburi"

var (
	Chicken = donburi.NewTag().SetName("Chicken")
	Marker  = donburi.NewTag().SetName("Marker")
)

// Resolv tags for sprite boxes
const (
	ResolvChicken = "chicken"
)
