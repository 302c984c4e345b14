package config

import (
	"image/color"

	"github.com/automoto/chickenwalk/shared/motion"
)

// ChickenConfig contains the walker's static tuning values
type ChickenConfig struct {
	// Movement
	Speed          float64 `yaml:"speed"`          // pixels per second
	ArrivalEpsilon float64 `yaml:"arrivalEpsilon"` // "close enough" radius in px

	// Animation
	AnimationFPS float64 `yaml:"animationFps"`

	// Dimensions of one sprite sheet frame
	FrameWidth  int `yaml:"frameWidth"`
	FrameHeight int `yaml:"frameHeight"`
	FrameCount  int `yaml:"frameCount"`

	// Display
	Scale float64 `yaml:"scale"`

	// Longest frame delta handed to a tick, seconds
	MaxElapsed float64 `yaml:"maxElapsed"`

	// "viewport" keeps the sprite on screen, "none" leaves it unconstrained
	Bounds string `yaml:"bounds"`

	// Directory to load sprite sheets from instead of the embedded ones
	SpriteDir string `yaml:"spriteDir"`
}

// Params converts the config into walker parameters.
func (c ChickenConfig) Params() motion.Params {
	bounds := motion.BoundsViewport
	if c.Bounds == BoundsNone {
		bounds = motion.BoundsNone
	}
	return motion.Params{
		Speed:          c.Speed,
		ArrivalEpsilon: c.ArrivalEpsilon,
		AnimationFPS:   c.AnimationFPS,
		FrameWidth:     c.FrameWidth,
		FrameHeight:    c.FrameHeight,
		FrameCount:     c.FrameCount,
		Scale:          c.Scale,
		Bounds:         bounds,
	}
}

const (
	BoundsViewport = "viewport"
	BoundsNone     = "none"
)

// MarkerConfig contains the click marker effect configuration
type MarkerConfig struct {
	Enabled     bool       `yaml:"enabled"`
	Duration    float64    `yaml:"duration"` // seconds
	StartRadius float64    `yaml:"startRadius"`
	EndRadius   float64    `yaml:"endRadius"`
	StrokeWidth float64    `yaml:"strokeWidth"`
	Color       color.RGBA `yaml:"-"`
}

// UIConfig contains colors and sizes for the background, fallback sprite and debug HUD
type UIConfig struct {
	BackgroundColor  color.RGBA
	FallbackColor    color.RGBA // drawn when the sprite sheets failed to load
	DebugBoxColor    color.RGBA
	DebugTargetColor color.RGBA
	HUDTextColor     color.RGBA
	HUDFontSize      float64
	HUDMargin        int
}

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Overlay bool // start with the debug overlay visible
}

// Global configuration instances
var C *Config
var Chicken ChickenConfig
var Marker MarkerConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Grass      = color.RGBA{R: 120, G: 170, B: 90, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Chicken Walk",
	}

	// Chicken Config
	Chicken = ChickenConfig{
		Speed:          180,
		ArrivalEpsilon: 2,
		AnimationFPS:   12,

		// Sprite sheets are 144x24: 6 frames * 24px wide
		FrameWidth:  24,
		FrameHeight: 24,
		FrameCount:  6,

		Scale:      2,
		MaxElapsed: motion.DefaultMaxElapsed,
		Bounds:     BoundsViewport,
	}

	// Marker Config
	Marker = MarkerConfig{
		Enabled:     true,
		Duration:    0.4,
		StartRadius: 2,
		EndRadius:   14,
		StrokeWidth: 2,
		Color:       White,
	}

	UI = UIConfig{
		BackgroundColor:  Grass,
		FallbackColor:    Orange,
		DebugBoxColor:    Cyan,
		DebugTargetColor: Yellow,
		HUDTextColor:     White,
		HUDFontSize:      12,
		HUDMargin:        8,
	}
}
