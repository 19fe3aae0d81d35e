package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a rank-2 tensor into a gonum matrix.
// Elements are widened to float64.
func ToDense[T Element](t *Tensor[T]) (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("%w: ToDense requires rank 2, got shape %v", ErrShapeMismatch, []int(t.shape))
	}

	box := opsFor[T]().box
	data := make([]float64, len(t.data))
	for i, v := range t.data {
		data[i] = box(v).Float64()
	}
	return mat.NewDense(t.shape[0], t.shape[1], data), nil
}

// FromDense builds a rank-2 tensor from any gonum matrix.
// Values are converted to T the same way SetValue converts a float64.
func FromDense[T Element](m mat.Matrix) (*Tensor[T], error) {
	r, c := m.Dims()
	t, err := New[T](Shape{r, c})
	if err != nil {
		return nil, err
	}

	unbox := opsFor[T]().unbox
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			t.data[i*c+j] = unbox(Float(m.At(i, j)))
		}
	}
	return t, nil
}
