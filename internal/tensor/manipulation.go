package tensor

// Transpose returns a new tensor whose shape is the reverse of t's shape.
// The element at coordinate r of the result equals the element at the
// reversed coordinate of t. For rank 1 the result is an equal copy.
//
// Example:
//
//	t := tensor.MustFromSlice([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
//	tr := t.Transpose() // Shape: [3, 2], [[1, 4], [2, 5], [3, 6]]
func (t *Tensor[T]) Transpose() *Tensor[T] {
	shape := t.shape.Reversed()
	result := &Tensor[T]{
		shape:  shape,
		stride: shape.ComputeStrides(),
		data:   make([]T, len(t.data)),
	}

	coord := make([]int, len(t.shape))
	t.transposeRecursive(result, 0, coord, make([]int, len(t.shape)))
	return result
}

// transposeRecursive walks every coordinate of t depth-first, outermost
// axis slowest, and copies each element to its reversed coordinate in dst.
func (t *Tensor[T]) transposeRecursive(dst *Tensor[T], axis int, coord, reversed []int) {
	if axis == len(coord) {
		src, dstOff := 0, 0
		for i, idx := range coord {
			src += idx * t.stride[i]
			reversed[len(coord)-1-i] = idx
		}
		for i, idx := range reversed {
			dstOff += idx * dst.stride[i]
		}
		dst.data[dstOff] = t.data[src]
		return
	}

	for i := 0; i < t.shape[axis]; i++ {
		coord[axis] = i
		t.transposeRecursive(dst, axis+1, coord, reversed)
	}
}
