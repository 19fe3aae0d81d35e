// Package nn provides the neural network building blocks that sit on top of tensors.
package nn

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Activation describes the shape of an activation curve.
//
// Layer logic evaluates the curve; this package only assembles the
// parameters. The zero Activation has every field set to 0.
type Activation struct {
	ShiftX   float32 // Horizontal shift
	ShiftY   float32 // Vertical shift
	StretchX float32 // Horizontal stretch
	StretchY float32 // Vertical stretch
	Swish    float32 // Swish blend factor
	Slope    float32 // Slope
}

// NewActivation creates a fully parameterized activation record.
//
// Example:
//
//	act := nn.NewActivation(0, 0, 1, 1, 0.5, 0.01)
func NewActivation(shiftX, shiftY, stretchX, stretchY, swish, slope float32) Activation {
	return Activation{
		ShiftX:   shiftX,
		ShiftY:   shiftY,
		StretchX: stretchX,
		StretchY: stretchY,
		Swish:    swish,
		Slope:    slope,
	}
}

// Sigmoid returns the sigmoid preset.
func Sigmoid() Activation {
	return NewActivation(0, 0, 0, 0, 0, 0)
}

// Swish returns the swish preset (Swish blend 1).
func Swish() Activation {
	return NewActivation(0, 0, 0, 0, 1, 0)
}

// Tanh returns the tanh preset.
func Tanh() Activation {
	return Activation{}
}

// ReLU returns the ReLU preset.
func ReLU() Activation {
	return Activation{}
}

// LeakyReLU returns the leaky ReLU preset.
func LeakyReLU() Activation {
	return Activation{}
}

// Step returns the step preset.
func Step() Activation {
	return Activation{}
}

// Linear returns the linear preset.
func Linear() Activation {
	return Activation{}
}

var presets = map[string]func() Activation{
	"sigmoid":   Sigmoid,
	"swish":     Swish,
	"tanh":      Tanh,
	"relu":      ReLU,
	"leakyrelu": LeakyReLU,
	"step":      Step,
	"linear":    Linear,
}

// Preset looks up a preset by name, case-insensitively.
// "leaky_relu" and "leaky-relu" are accepted for LeakyReLU.
func Preset(name string) (Activation, error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
	f, ok := presets[key]
	if !ok {
		return Activation{}, fmt.Errorf("unknown activation preset %q", name)
	}
	return f(), nil
}

// PresetNames returns the canonical preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports the first non-finite field.
func (a Activation) Validate() error {
	fields := []struct {
		name  string
		value float32
	}{
		{"shiftX", a.ShiftX},
		{"shiftY", a.ShiftY},
		{"stretchX", a.StretchX},
		{"stretchY", a.StretchY},
		{"swish", a.Swish},
		{"slope", a.Slope},
	}
	for _, f := range fields {
		v := float64(f.value)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("activation %s is not finite: %v", f.name, f.value)
		}
	}
	return nil
}
