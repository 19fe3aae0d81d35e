package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a fixed-shape, fixed-representation dense N-dimensional array.
// Elements live in a single flat row-major buffer of length Shape().NumElements().
//
// Type Parameters:
//   - T: Element representation (int8, int16, float32 or Number)
//
// A Tensor is not safe for concurrent mutation. Binary operations never
// mutate their operands, so sharing a tensor read-only is safe.
//
// Example:
//
//	t, _ := tensor.New[float32](Shape{3, 4})
//	_ = t.Set(1.5, 1, 2)
//	v, _ := t.At(1, 2) // 1.5
type Tensor[T Element] struct {
	shape  Shape
	stride []int
	data   []T
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return append([]int(nil), t.stride...)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// Data returns the flat backing buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// At returns the element at the given coordinate.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
//	value, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(coord ...int) (T, error) {
	off, err := offset(t.shape, t.stride, coord)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[off], nil
}

// Set sets the element at the given coordinate.
func (t *Tensor[T]) Set(value T, coord ...int) error {
	off, err := offset(t.shape, t.stride, coord)
	if err != nil {
		return err
	}
	t.data[off] = value
	return nil
}

// Value returns the element at coord boxed as a Number.
func (t *Tensor[T]) Value(coord ...int) (Number, error) {
	v, err := t.At(coord...)
	if err != nil {
		return Number{}, err
	}
	return opsFor[T]().box(v), nil
}

// NumberAt returns the element at coord boxed as a Number. It is the
// boxed counterpart of Int8At, Int16At and Float32At.
func (t *Tensor[T]) NumberAt(coord ...int) (Number, error) {
	return t.Value(coord...)
}

// SetValue converts value to the tensor's representation and stores it.
// Floats written to integer tensors truncate toward zero; out-of-range
// integers wrap. Non-numeric values fail with ErrUnsupportedValue.
func (t *Tensor[T]) SetValue(value any, coord ...int) error {
	n, err := NumberOf(value)
	if err != nil {
		return err
	}
	return t.Set(opsFor[T]().unbox(n), coord...)
}

// Int8At returns the element at coord converted to int8.
func (t *Tensor[T]) Int8At(coord ...int) (int8, error) {
	n, err := t.Value(coord...)
	if err != nil {
		return 0, err
	}
	return int8Ops.unbox(n), nil
}

// Int16At returns the element at coord converted to int16.
func (t *Tensor[T]) Int16At(coord ...int) (int16, error) {
	n, err := t.Value(coord...)
	if err != nil {
		return 0, err
	}
	return int16Ops.unbox(n), nil
}

// Float32At returns the element at coord converted to float32.
func (t *Tensor[T]) Float32At(coord ...int) (float32, error) {
	n, err := t.Value(coord...)
	if err != nil {
		return 0, err
	}
	return float32Ops.unbox(n), nil
}

// Fill sets every element to value.
func (t *Tensor[T]) Fill(value T) {
	for i := range t.data {
		t.data[i] = value
	}
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   append([]T(nil), t.data...),
	}
}

// String returns a human-readable representation of the tensor.
// Tensors with more than 16 elements print only their header.
func (t *Tensor[T]) String() string {
	header := fmt.Sprintf("Tensor[%s]%v", t.DType(), []int(t.shape))
	if len(t.data) > 16 {
		return header
	}
	box := opsFor[T]().box
	parts := make([]string, len(t.data))
	for i, v := range t.data {
		parts[i] = box(v).String()
	}
	return header + "{" + strings.Join(parts, ", ") + "}"
}

func (t *Tensor[T]) isTensor() {}
