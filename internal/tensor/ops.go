package tensor

import "fmt"

// AddScalar adds s to every element in place.
//
// Example:
//
//	t := tensor.Zeros[int16](Shape{4})
//	t.AddScalar(5) // [5, 5, 5, 5]
func (t *Tensor[T]) AddScalar(s T) {
	add := opsFor[T]().add
	for i := range t.data {
		t.data[i] = add(t.data[i], s)
	}
}

// AddScalarValue converts s to the tensor's representation and adds it in place.
// Non-numeric scalars fail with ErrUnsupportedValue and leave the tensor untouched.
func (t *Tensor[T]) AddScalarValue(s any) error {
	n, err := NumberOf(s)
	if err != nil {
		return err
	}
	t.AddScalar(opsFor[T]().unbox(n))
	return nil
}

// Add performs element-wise addition and returns a new tensor.
// Neither operand is modified. Shapes must match exactly (no broadcasting).
//
// Example:
//
//	a := tensor.MustFromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
//	b := tensor.MustFromSlice([]float32{10, 20, 30, 40}, Shape{2, 2})
//	c, err := a.Add(b) // [[11, 22], [33, 44]]
func (t *Tensor[T]) Add(other *Tensor[T]) (*Tensor[T], error) {
	return t.elementwise(other, "add", opsFor[T]().add)
}

// Sub performs element-wise subtraction and returns a new tensor.
// Neither operand is modified. Shapes must match exactly (no broadcasting).
func (t *Tensor[T]) Sub(other *Tensor[T]) (*Tensor[T], error) {
	return t.elementwise(other, "sub", opsFor[T]().sub)
}

func (t *Tensor[T]) elementwise(other *Tensor[T], name string, op func(a, b T) T) (*Tensor[T], error) {
	if !t.shape.Equal(other.shape) {
		return nil, fmt.Errorf("%w: %s: %v vs %v", ErrShapeMismatch, name, []int(t.shape), []int(other.shape))
	}

	result := &Tensor[T]{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   make([]T, len(t.data)),
	}
	for i := range result.data {
		result.data[i] = op(t.data[i], other.data[i])
	}
	return result, nil
}
