package tensor

import "fmt"

// New creates a zero-initialized tensor with the given shape.
// Returns ErrInvalidShape if the shape is empty or has a non-positive dimension.
func New[T Element](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Tensor[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]T, shape.NumElements()),
	}, nil
}

// Zeros creates a zero-initialized tensor.
// Panics if the shape is invalid.
//
// Example:
//
//	t := tensor.Zeros[int16](Shape{4})
func Zeros[T Element](shape Shape) *Tensor[T] {
	t, err := New[T](shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Full creates a tensor filled with a specific value.
// Panics if the shape is invalid.
func Full[T Element](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	t.Fill(value)
	return t
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied into the tensor's memory.
func FromSlice[T Element](data []T, shape Shape) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d", ErrShapeMismatch, shape, len(t.data), len(data))
	}
	copy(t.data, data)
	return t, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice[T Element](data []T, shape Shape) *Tensor[T] {
	t, err := FromSlice(data, shape)
	if err != nil {
		panic(err)
	}
	return t
}
