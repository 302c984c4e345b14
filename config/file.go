package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileDoc struct {
	Window  Config        `yaml:"window"`
	Chicken ChickenConfig `yaml:"chicken"`
	Marker  MarkerConfig  `yaml:"marker"`
}

// LoadFile applies a YAML tuning file on top of the defaults.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Apply decodes YAML over the current values. Keys that are absent keep their
// current value. Nothing is changed if the result does not validate.
func Apply(data []byte) error {
	doc := fileDoc{Window: *C, Chicken: Chicken, Marker: Marker}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := doc.validate(); err != nil {
		return err
	}

	*C = doc.Window
	Chicken = doc.Chicken
	Marker = doc.Marker
	return nil
}

func (d *fileDoc) validate() error {
	var errs []error
	if d.Window.Width <= 0 || d.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", d.Window.Width, d.Window.Height))
	}

	c := d.Chicken
	if c.Speed < 0 {
		errs = append(errs, fmt.Errorf("chicken.speed %v is negative", c.Speed))
	}
	if c.ArrivalEpsilon < 0 {
		errs = append(errs, fmt.Errorf("chicken.arrivalEpsilon %v is negative", c.ArrivalEpsilon))
	}
	if c.AnimationFPS <= 0 {
		errs = append(errs, fmt.Errorf("chicken.animationFps %v must be positive", c.AnimationFPS))
	}
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("chicken frame size %dx%d must be positive", c.FrameWidth, c.FrameHeight))
	}
	if c.FrameCount < 1 {
		errs = append(errs, fmt.Errorf("chicken.frameCount %d must be at least 1", c.FrameCount))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("chicken.scale %v must be positive", c.Scale))
	}
	if c.MaxElapsed <= 0 {
		errs = append(errs, fmt.Errorf("chicken.maxElapsed %v must be positive", c.MaxElapsed))
	}
	if c.Bounds != BoundsViewport && c.Bounds != BoundsNone {
		errs = append(errs, fmt.Errorf("chicken.bounds %q must be %q or %q", c.Bounds, BoundsViewport, BoundsNone))
	}

	if d.Marker.Duration < 0 {
		errs = append(errs, fmt.Errorf("marker.duration %v is negative", d.Marker.Duration))
	}
	return errors.Join(errs...)
}
