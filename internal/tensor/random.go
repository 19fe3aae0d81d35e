package tensor

import (
	"fmt"
	"math/rand/v2"
)

// Source supplies the randomness for Randomize.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
	Int64N(n int64) int64
}

// RandomConfig configures tensor randomization.
type RandomConfig struct {
	// Seed for the PCG source. The same seed reproduces the same tensor.
	Seed uint64

	// Min and Max bound the half-open range [Min, Max).
	Min float64
	Max float64
}

// DefaultRandomConfig returns the range [-1, 1) with seed 1.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{
		Seed: 1,
		Min:  -1,
		Max:  1,
	}
}

// NewSource returns a deterministic PCG-backed source.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // G404: ML uses math/rand intentionally for reproducibility
}

// Source returns a source seeded from the config.
func (c RandomConfig) Source() Source {
	return NewSource(c.Seed)
}

// Randomize fills every element independently with a uniform draw from [lo, hi).
// Integer tensors draw integers, float tensors draw floats. A Boxed tensor
// draws integers when both bounds are integers and floats otherwise.
// If hi <= lo every element is set to lo.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{10, 10})
//	t.Randomize(tensor.NewSource(42), -0.5, 0.5)
func (t *Tensor[T]) Randomize(src Source, lo, hi T) {
	random := opsFor[T]().random
	for i := range t.data {
		t.data[i] = random(src, lo, hi)
	}
}

// RandomizeValue is Randomize with bounds of any numeric Go type,
// converted to the tensor's representation first.
func (t *Tensor[T]) RandomizeValue(src Source, lo, hi any) error {
	l, err := NumberOf(lo)
	if err != nil {
		return fmt.Errorf("randomize min: %w", err)
	}
	h, err := NumberOf(hi)
	if err != nil {
		return fmt.Errorf("randomize max: %w", err)
	}
	unbox := opsFor[T]().unbox
	t.Randomize(src, unbox(l), unbox(h))
	return nil
}
