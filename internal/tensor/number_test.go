package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberOf(t *testing.T) {
	tests := []struct {
		in      any
		want    Number
		wantErr bool
	}{
		{int(3), Int(3), false},
		{int8(-3), Int(-3), false},
		{int16(300), Int(300), false},
		{int32(-70000), Int(-70000), false},
		{int64(1 << 40), Int(1 << 40), false},
		{uint8(255), Int(255), false},
		{uint64(math.MaxUint64), Float(float64(uint64(math.MaxUint64))), false},
		{float32(0.5), Float(0.5), false},
		{2.25, Float(2.25), false},
		{Int(9), Int(9), false},
		{"1", Number{}, true},
		{true, Number{}, true},
		{nil, Number{}, true},
	}

	for _, tt := range tests {
		got, err := NumberOf(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnsupportedValue, "%T", tt.in)
			continue
		}
		require.NoError(t, err, "%T", tt.in)
		assert.True(t, got.Equal(tt.want), "NumberOf(%v) = %v, want %v", tt.in, got, tt.want)
	}
}

func TestNumberConversions(t *testing.T) {
	assert.Equal(t, int64(-2), Float(-2.9).Int64())
	assert.Equal(t, int64(2), Float(2.9).Int64())
	assert.Equal(t, int64(0), Float(math.NaN()).Int64())
	assert.Equal(t, int64(math.MaxInt64), Float(math.Inf(1)).Int64())
	assert.Equal(t, int64(math.MinInt64), Float(math.Inf(-1)).Int64())
	assert.Equal(t, 7.0, Int(7).Float64())
}

func TestNumberArithmetic(t *testing.T) {
	assert.True(t, Int(2).Add(Int(3)).Equal(Int(5)))
	assert.True(t, Int(2).Sub(Int(3)).Equal(Int(-1)))
	assert.True(t, Int(2).Add(Float(0.5)).Equal(Float(2.5)))
	assert.True(t, Float(2).Sub(Int(3)).Equal(Float(-1)))

	assert.True(t, Int(1).Less(Int(2)))
	assert.True(t, Int(1).Less(Float(1.5)))
	assert.False(t, Float(2).Less(Int(2)))
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "0.25", Float(0.25).String())
	assert.Equal(t, "0", Number{}.String())
}
