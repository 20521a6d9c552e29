package glide

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultWorldWidth        = 6000.0
	DefaultWorldHeight       = 6000.0
	DefaultMinScale          = 0.5
	DefaultMaxScale          = 2.0
	DefaultWheelSensitivity  = 0.001
	DefaultButtonZoomImpulse = 0.05
)

var (
	ErrUnknownPreset      = errors.New("unknown physics preset")
	ErrInvalidScaleLimits = errors.New("invalid scale limits")
	ErrInvalidWorldSize   = errors.New("invalid world size")
	ErrInvalidProfile     = errors.New("invalid physics profile")
)

// Config is the construction-time configuration of an Engine. Zero fields
// take the package defaults.
type Config struct {
	// PhysicsPreset names a registered profile: "rigid", "default", "fluid",
	// or one added with RegisterProfile.
	PhysicsPreset string `yaml:"physics_preset" json:"physicsPreset"`
	// Profile, when set, is used instead of the named preset.
	Profile *PhysicsProfile `yaml:"profile,omitempty" json:"profile,omitempty"`

	WorldSize         Size    `yaml:"world_size" json:"worldSize"`
	MinScale          float64 `yaml:"min_scale" json:"minScale"`
	MaxScale          float64 `yaml:"max_scale" json:"maxScale"`
	WheelSensitivity  float64 `yaml:"wheel_sensitivity" json:"wheelSensitivity"`
	ButtonZoomImpulse float64 `yaml:"button_zoom_impulse" json:"buttonZoomImpulse"`
}

// ScaleLimits is the range the scale rests in. Interaction may push the
// scale past it temporarily.
type ScaleLimits struct {
	Min, Max float64
}

// Settings is a fully resolved Config.
type Settings struct {
	Preset            string
	Profile           PhysicsProfile
	World             Size
	Scale             ScaleLimits
	WheelSensitivity  float64
	ButtonZoomImpulse float64
}

// Resolve merges c with the defaults and looks up the physics profile.
func (c Config) Resolve() (Settings, error) {
	s := Settings{
		Preset:            c.PhysicsPreset,
		World:             c.WorldSize,
		Scale:             ScaleLimits{Min: c.MinScale, Max: c.MaxScale},
		WheelSensitivity:  c.WheelSensitivity,
		ButtonZoomImpulse: c.ButtonZoomImpulse,
	}
	if s.Preset == "" {
		s.Preset = PresetDefault
	}
	if s.World.Width == 0 {
		s.World.Width = DefaultWorldWidth
	}
	if s.World.Height == 0 {
		s.World.Height = DefaultWorldHeight
	}
	if s.Scale.Min == 0 {
		s.Scale.Min = DefaultMinScale
	}
	if s.Scale.Max == 0 {
		s.Scale.Max = DefaultMaxScale
	}
	if s.WheelSensitivity == 0 {
		s.WheelSensitivity = DefaultWheelSensitivity
	}
	if s.ButtonZoomImpulse == 0 {
		s.ButtonZoomImpulse = DefaultButtonZoomImpulse
	}

	if s.World.Width < 0 || s.World.Height < 0 {
		return Settings{}, fmt.Errorf("%w: %vx%v", ErrInvalidWorldSize, s.World.Width, s.World.Height)
	}
	if s.Scale.Min < 0 || s.Scale.Min > s.Scale.Max {
		return Settings{}, fmt.Errorf("%w: min %v, max %v", ErrInvalidScaleLimits, s.Scale.Min, s.Scale.Max)
	}

	if c.Profile != nil {
		if err := c.Profile.Validate(); err != nil {
			return Settings{}, err
		}
		s.Profile = *c.Profile
		return s, nil
	}
	p, ok := LookupProfile(s.Preset)
	if !ok {
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownPreset, s.Preset)
	}
	s.Profile = p
	return s, nil
}

// LoadConfig decodes a YAML configuration document.
//
//	physics_preset: fluid
//	world_size: {width: 4000, height: 3000}
//	min_scale: 0.25
//	max_scale: 4
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}
