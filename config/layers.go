package config

// Draw layers. Untyped so the config package stays free of ebiten imports;
// they convert to ecs.LayerID where used.
const (
	Default = iota
)
