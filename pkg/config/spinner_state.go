package config

import (
	"errors"
	"fmt"
	"os"

	"ringspin/pkg/gui/theme"
	"ringspin/pkg/spinner"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidSize is returned for negative dot sizes or ring diameters.
	ErrInvalidSize = errors.New("size must not be negative")
	// ErrInvalidColor is returned for colors that are not #rrggbb hex.
	ErrInvalidColor = errors.New("color must be a hex value like #9d87ae")
)

// SpinnerState stores the spinner preferences.
type SpinnerState struct {
	DotSize      float64 `json:"dot_size" yaml:"dot_size"`
	RingDiameter float64 `json:"ring_diameter" yaml:"ring_diameter"`
	Color        string  `json:"color" yaml:"color"`
}

// DefaultSpinnerState returns the widget defaults.
func DefaultSpinnerState() SpinnerState {
	return SpinnerState{
		DotSize:      spinner.DefaultDotSize,
		RingDiameter: spinner.DefaultRingDiameter,
		Color:        theme.AccentColor,
	}
}

func (s *SpinnerState) normalize() {
	d := DefaultSpinnerState()
	if s.DotSize == 0 {
		s.DotSize = d.DotSize
	}
	if s.RingDiameter == 0 {
		s.RingDiameter = d.RingDiameter
	}
	if s.Color == "" {
		s.Color = d.Color
	}
}

// Validate checks sizes and color.
func (s SpinnerState) Validate() error {
	if s.DotSize < 0 {
		return fmt.Errorf("dot size %v: %w", s.DotSize, ErrInvalidSize)
	}
	if s.RingDiameter < 0 {
		return fmt.Errorf("ring diameter %v: %w", s.RingDiameter, ErrInvalidSize)
	}
	if s.Color != "" {
		if _, err := colorful.Hex(s.Color); err != nil {
			return fmt.Errorf("color %q: %w", s.Color, ErrInvalidColor)
		}
	}
	return nil
}

// Options converts the preferences into widget options.
func (s SpinnerState) Options() []spinner.Option {
	return []spinner.Option{
		spinner.WithDotSize(s.DotSize),
		spinner.WithRingDiameter(s.RingDiameter),
		spinner.WithColor(spinner.Color(s.Color)),
	}
}

// Merge returns s with every non-zero field of override applied.
func (s SpinnerState) Merge(override SpinnerState) SpinnerState {
	if override.DotSize != 0 {
		s.DotSize = override.DotSize
	}
	if override.RingDiameter != 0 {
		s.RingDiameter = override.RingDiameter
	}
	if override.Color != "" {
		s.Color = override.Color
	}
	return s
}

// LoadPreset reads a YAML preset such as:
//
//	dot_size: 5
//	ring_diameter: 12
//	color: "#8be9fd"
//
// Fields left out stay zero so they can be merged over saved preferences.
func LoadPreset(path string) (SpinnerState, error) {
	var preset SpinnerState
	data, err := os.ReadFile(path)
	if err != nil {
		return preset, fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return preset, fmt.Errorf("parse preset %s: %w", path, err)
	}
	if err := preset.Validate(); err != nil {
		return preset, fmt.Errorf("preset %s: %w", path, err)
	}
	return preset, nil
}

// GetSpinnerState returns the saved spinner preferences
func GetSpinnerState() (SpinnerState, error) {
	state, err := LoadState()
	if err != nil {
		return DefaultSpinnerState(), err
	}
	return state.Spinner, nil
}

// SetSpinnerState saves the spinner preferences
func SetSpinnerState(s SpinnerState) error {
	state, err := LoadState()
	if err != nil {
		return err
	}

	state.Spinner = s
	return SaveState(state)
}
