// Copyright 2025 Volgyerdo Nonprofit Kft. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/volgyerdo/neural/nn"
)

func TestPublicPresets(t *testing.T) {
	tests := []struct {
		name string
		get  func() nn.Activation
	}{
		{"sigmoid", nn.Sigmoid},
		{"swish", nn.Swish},
		{"tanh", nn.Tanh},
		{"relu", nn.ReLU},
		{"leakyrelu", nn.LeakyReLU},
		{"step", nn.Step},
		{"linear", nn.Linear},
	}

	for _, tt := range tests {
		byName, err := nn.Preset(tt.name)
		require.NoError(t, err)
		assert.Equal(t, tt.get(), byName, tt.name)
		require.NoError(t, byName.Validate())
	}
	assert.Len(t, nn.PresetNames(), len(tests))
}

func TestPublicNewActivation(t *testing.T) {
	act := nn.NewActivation(0.5, -0.5, 2, 3, 1, 0.01)
	assert.Equal(t, float32(0.5), act.ShiftX)
	assert.Equal(t, float32(-0.5), act.ShiftY)
	assert.Equal(t, float32(2), act.StretchX)
	assert.Equal(t, float32(3), act.StretchY)
	assert.Equal(t, float32(1), act.Swish)
	assert.Equal(t, float32(0.01), act.Slope)
}
