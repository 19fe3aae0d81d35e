package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
// A valid shape has at least one axis and every dimension is positive.
type Shape []int

// NumElements returns the total number of elements (product of dimensions).
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks if the shape is valid (rank >= 1, all dimensions > 0,
// element count fits in an int).
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: rank 0 is not supported", ErrInvalidShape)
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, []int(s))
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Reversed returns a copy of the shape with the axis order reversed.
func (s Shape) Reversed() Shape {
	r := make(Shape, len(s))
	for i, dim := range s {
		r[len(s)-1-i] = dim
	}
	return r
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Offset maps a coordinate to its flat row-major offset.
//
// Example:
//
//	Shape{2, 3}.Offset([]int{1, 2}) // 1*3 + 2*1 = 5
func (s Shape) Offset(coord []int) (int, error) {
	return offset(s, s.ComputeStrides(), coord)
}

// offset is the index calculator shared by every storage access.
func offset(shape Shape, strides, coord []int) (int, error) {
	if len(coord) != len(shape) {
		return 0, fmt.Errorf("%w: expected %d indices, got %d", ErrIndexOutOfRange, len(shape), len(coord))
	}

	off := 0
	for i, idx := range coord {
		if idx < 0 || idx >= shape[i] {
			return 0, fmt.Errorf("%w: index %d out of bounds for dimension %d (size %d)", ErrIndexOutOfRange, idx, i, shape[i])
		}
		off += idx * strides[i]
	}
	return off, nil
}
