package glide

import (
	"fmt"
	"sort"
)

// PhysicsProfile is the set of spring and damping constants used by pan and
// zoom physics. Profiles are plain values; the engine copies one at
// construction and never mutates it.
type PhysicsProfile struct {
	// PanFriction is the per-frame velocity retention after release (0..1).
	PanFriction float64 `yaml:"pan_friction" json:"panFriction"`
	// PanLerpFactor is the fraction of the remaining distance to the drag
	// target covered each frame while panning.
	PanLerpFactor float64 `yaml:"pan_lerp_factor" json:"panLerpFactor"`
	// SnapBackStiffness scales the spring pulling an out-of-bounds
	// translation back inside.
	SnapBackStiffness float64 `yaml:"snap_back_stiffness" json:"snapBackStiffness"`
	// RubberBandStiffness compresses drag overflow past the bounds. Higher is
	// a stiffer wall.
	RubberBandStiffness float64 `yaml:"rubber_band_stiffness" json:"rubberBandStiffness"`

	ZoomFriction             float64 `yaml:"zoom_friction" json:"zoomFriction"`
	ZoomLerpFactor           float64 `yaml:"zoom_lerp_factor" json:"zoomLerpFactor"`
	ZoomSnapBackStiffness    float64 `yaml:"zoom_snap_back_stiffness" json:"zoomSnapBackStiffness"`
	PinchRubberBandStiffness float64 `yaml:"pinch_rubber_band_stiffness" json:"pinchRubberBandStiffness"`
}

// Built-in presets. None is canonical; they trade directness for glide.

// ProfileRigid stops quickly and resists overscroll strongly.
var ProfileRigid = PhysicsProfile{
	PanFriction:              0.80,
	PanLerpFactor:            0.60,
	SnapBackStiffness:        0.20,
	RubberBandStiffness:      0.75,
	ZoomFriction:             0.75,
	ZoomLerpFactor:           0.50,
	ZoomSnapBackStiffness:    0.25,
	PinchRubberBandStiffness: 0.90,
}

// ProfileDefault is the balanced preset used when none is named.
var ProfileDefault = PhysicsProfile{
	PanFriction:              0.90,
	PanLerpFactor:            0.35,
	SnapBackStiffness:        0.12,
	RubberBandStiffness:      0.55,
	ZoomFriction:             0.82,
	ZoomLerpFactor:           0.35,
	ZoomSnapBackStiffness:    0.15,
	PinchRubberBandStiffness: 0.50,
}

// ProfileFluid coasts far and lets the content stretch past the edges.
var ProfileFluid = PhysicsProfile{
	PanFriction:              0.95,
	PanLerpFactor:            0.20,
	SnapBackStiffness:        0.06,
	RubberBandStiffness:      0.35,
	ZoomFriction:             0.90,
	ZoomLerpFactor:           0.20,
	ZoomSnapBackStiffness:    0.08,
	PinchRubberBandStiffness: 0.25,
}

const (
	PresetRigid   = "rigid"
	PresetDefault = "default"
	PresetFluid   = "fluid"
)

var profiles = map[string]PhysicsProfile{
	PresetRigid:   ProfileRigid,
	PresetDefault: ProfileDefault,
	PresetFluid:   ProfileFluid,
}

// RegisterProfile adds or replaces a named profile so that Config can select
// it by name. Call it during program setup, before engines are created.
func RegisterProfile(name string, p PhysicsProfile) error {
	if name == "" {
		return fmt.Errorf("register profile: empty name")
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("register profile %q: %w", name, err)
	}
	profiles[name] = p
	return nil
}

// LookupProfile returns the profile registered under name.
func LookupProfile(name string) (PhysicsProfile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Presets returns the registered profile names, sorted.
func Presets() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every constant lies in the range the integrators are
// stable for. Frictions must be in (0, 1) so released motion always decays;
// lerp factors and snap-back stiffnesses in (0, 1]; rubber band stiffnesses
// in [0, 1). The engine integrates in slices of at most one nominal frame,
// and inside these ranges the damped spring converges for any slice length.
func (p PhysicsProfile) Validate() error {
	damping := []struct {
		name string
		v    float64
	}{
		{"pan_friction", p.PanFriction},
		{"zoom_friction", p.ZoomFriction},
	}
	for _, c := range damping {
		if c.v <= 0 || c.v >= 1 {
			return fmt.Errorf("%w: %s = %v, want (0, 1)", ErrInvalidProfile, c.name, c.v)
		}
	}
	unit := []struct {
		name string
		v    float64
	}{
		{"pan_lerp_factor", p.PanLerpFactor},
		{"snap_back_stiffness", p.SnapBackStiffness},
		{"zoom_lerp_factor", p.ZoomLerpFactor},
		{"zoom_snap_back_stiffness", p.ZoomSnapBackStiffness},
	}
	for _, c := range unit {
		if c.v <= 0 || c.v > 1 {
			return fmt.Errorf("%w: %s = %v, want (0, 1]", ErrInvalidProfile, c.name, c.v)
		}
	}
	if p.RubberBandStiffness < 0 || p.RubberBandStiffness >= 1 {
		return fmt.Errorf("%w: rubber_band_stiffness = %v, want [0, 1)", ErrInvalidProfile, p.RubberBandStiffness)
	}
	if p.PinchRubberBandStiffness < 0 || p.PinchRubberBandStiffness >= 1 {
		return fmt.Errorf("%w: pinch_rubber_band_stiffness = %v, want [0, 1)", ErrInvalidProfile, p.PinchRubberBandStiffness)
	}
	return nil
}
