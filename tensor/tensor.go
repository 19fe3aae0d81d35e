// Copyright 2025 Volgyerdo Nonprofit Kft. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/volgyerdo/neural/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for tensor element representations.
// Supported types: int8, int16, float32, Number.
type Element = tensor.Element

// DataType represents the underlying representation of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Float32 DataType = tensor.Float32
	Boxed   DataType = tensor.Boxed
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Number is the boxed numeric element of a Boxed tensor.
type Number = tensor.Number

// Tensor is a generic dense tensor.
//
// Example:
//
//	x := tensor.Zeros[int16](tensor.Shape{4})
//	x.AddScalar(5)  // [5, 5, 5, 5]
type Tensor[T Element] = tensor.Tensor[T]

// Interface is the representation-agnostic view of a tensor.
type Interface = tensor.Interface

// Source supplies randomness for Randomize.
type Source = tensor.Source

// RandomConfig configures tensor randomization.
type RandomConfig = tensor.RandomConfig

// Errors reported by tensor operations. Test with errors.Is.
var (
	ErrInvalidShape     = tensor.ErrInvalidShape
	ErrIndexOutOfRange  = tensor.ErrIndexOutOfRange
	ErrShapeMismatch    = tensor.ErrShapeMismatch
	ErrUnsupportedValue = tensor.ErrUnsupportedValue
)

// Number constructors

// Int returns an integer Number.
func Int(v int64) Number {
	return tensor.Int(v)
}

// Float returns a floating-point Number.
func Float(v float64) Number {
	return tensor.Float(v)
}

// NumberOf boxes any Go numeric value.
func NumberOf(v any) (Number, error) {
	return tensor.NumberOf(v)
}

// Creation functions

// New creates a zero-initialized tensor.
//
// Example:
//
//	x, err := tensor.New[float32](tensor.Shape{2, 3})
func New[T Element](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// Zeros creates a zero-initialized tensor, panicking on an invalid shape.
func Zeros[T Element](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Element](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor from a Go slice in row-major order.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T Element](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// MustFromSlice is like FromSlice but panics on error.
//
// Example:
//
//	x := tensor.MustFromSlice([]int16{1, 2, 3, 4}, tensor.Shape{2, 2})
func MustFromSlice[T Element](data []T, shape Shape) *Tensor[T] {
	return tensor.MustFromSlice(data, shape)
}

// Create allocates a zero-initialized tensor whose representation is chosen at runtime.
//
// Example:
//
//	x, err := tensor.Create(tensor.Shape{2, 3}, tensor.Int16)
func Create(shape Shape, dtype DataType) (Interface, error) {
	return tensor.Create(shape, dtype)
}

// Dynamic operations

// AddAny adds two tensors of the same representation and shape.
func AddAny(a, b Interface) (Interface, error) {
	return tensor.AddAny(a, b)
}

// SubAny subtracts b from a.
func SubAny(a, b Interface) (Interface, error) {
	return tensor.SubAny(a, b)
}

// TransposeAny reverses the axes of a tensor of any representation.
func TransposeAny(t Interface) Interface {
	return tensor.TransposeAny(t)
}

// EqualAny reports value equality; different representations are never equal.
func EqualAny(a, b Interface) bool {
	return tensor.EqualAny(a, b)
}

// Randomness

// NewSource returns a deterministic random source.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{10, 10})
//	x.Randomize(tensor.NewSource(42), -1, 1)
func NewSource(seed uint64) Source {
	return tensor.NewSource(seed)
}

// DefaultRandomConfig returns the range [-1, 1) with seed 1.
func DefaultRandomConfig() RandomConfig {
	return tensor.DefaultRandomConfig()
}

// Interop

// ToDense copies a rank-2 tensor into a gonum matrix.
func ToDense[T Element](t *Tensor[T]) (*mat.Dense, error) {
	return tensor.ToDense(t)
}

// FromDense builds a rank-2 tensor from a gonum matrix.
func FromDense[T Element](m mat.Matrix) (*Tensor[T], error) {
	return tensor.FromDense[T](m)
}
