package nn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivation(t *testing.T) {
	act := NewActivation(1, 2, 3, 4, 5, 6)
	assert.Equal(t, Activation{
		ShiftX:   1,
		ShiftY:   2,
		StretchX: 3,
		StretchY: 4,
		Swish:    5,
		Slope:    6,
	}, act)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, Activation{}, Sigmoid())
	assert.Equal(t, Activation{Swish: 1}, Swish())

	for _, f := range []func() Activation{Tanh, ReLU, LeakyReLU, Step, Linear} {
		assert.Equal(t, Activation{}, f())
	}
}

func TestPresetLookup(t *testing.T) {
	tests := []struct {
		name string
		want Activation
	}{
		{"sigmoid", Sigmoid()},
		{"Swish", Swish()},
		{"TANH", Tanh()},
		{"relu", ReLU()},
		{"leaky_relu", LeakyReLU()},
		{"leaky-relu", LeakyReLU()},
		{"LeakyReLU", LeakyReLU()},
		{"step", Step()},
		{"linear", Linear()},
	}

	for _, tt := range tests {
		got, err := Preset(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := Preset("gelu")
	assert.Error(t, err)
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	assert.Equal(t, []string{"leakyrelu", "linear", "relu", "sigmoid", "step", "swish", "tanh"}, names)
	for _, name := range names {
		_, err := Preset(name)
		require.NoError(t, err)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Swish().Validate())
	require.NoError(t, NewActivation(-1, 1, 0.5, 2, 1, 0.01).Validate())

	act := Swish()
	act.Slope = float32(math.Inf(1))
	assert.ErrorContains(t, act.Validate(), "slope")

	act = Sigmoid()
	act.ShiftX = float32(math.NaN())
	assert.ErrorContains(t, act.Validate(), "shiftX")
}
