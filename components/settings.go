package components

import "github.com/yohamta/donburi"

// SettingsData stores runtime display toggles
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
