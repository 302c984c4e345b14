package config

// SettingsConfig contains display settings persistence configuration
type SettingsConfig struct {
	AppName string // gdata application directory
	ItemKey string
}

// Settings is the global settings persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "chickenwalk",
		ItemKey: "settings",
	}
}
