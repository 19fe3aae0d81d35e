// Copyright 2025 Volgyerdo Nonprofit Kft. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/volgyerdo/neural/internal/nn"
)

// Activation describes the shape of an activation curve.
type Activation = nn.Activation

// NewActivation creates a fully parameterized activation record.
//
// Example:
//
//	act := nn.NewActivation(0, 0, 1, 1, 0.5, 0.01)
func NewActivation(shiftX, shiftY, stretchX, stretchY, swish, slope float32) Activation {
	return nn.NewActivation(shiftX, shiftY, stretchX, stretchY, swish, slope)
}

// Presets

// Sigmoid returns the sigmoid preset.
func Sigmoid() Activation { return nn.Sigmoid() }

// Swish returns the swish preset.
func Swish() Activation { return nn.Swish() }

// Tanh returns the tanh preset.
func Tanh() Activation { return nn.Tanh() }

// ReLU returns the ReLU preset.
func ReLU() Activation { return nn.ReLU() }

// LeakyReLU returns the leaky ReLU preset.
func LeakyReLU() Activation { return nn.LeakyReLU() }

// Step returns the step preset.
func Step() Activation { return nn.Step() }

// Linear returns the linear preset.
func Linear() Activation { return nn.Linear() }

// Preset looks up a preset by name, case-insensitively.
//
// Example:
//
//	act, err := nn.Preset("leaky_relu")
func Preset(name string) (Activation, error) {
	return nn.Preset(name)
}

// PresetNames returns the canonical preset names in sorted order.
func PresetNames() []string {
	return nn.PresetNames()
}
