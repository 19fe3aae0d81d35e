package tensor

import "github.com/cespare/xxhash/v2"

// Equal reports whether t and other have the same shape and the same
// elements. Floats compare by bit pattern, so NaN equals NaN and
// -0 differs from +0, which keeps Equal consistent with Hash.
func (t *Tensor[T]) Equal(other *Tensor[T]) bool {
	if t == other {
		return true
	}
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	eq := opsFor[T]().equal
	for i := range t.data {
		if !eq(t.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Hash returns an order-sensitive 64-bit digest of the tensor's contents.
// Equal tensors have equal hashes.
func (t *Tensor[T]) Hash() uint64 {
	bits := opsFor[T]().bits
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, v := range t.data {
		buf = bits(buf, v)
		if len(buf) >= 48 {
			_, _ = d.Write(buf)
			buf = buf[:0]
		}
	}
	_, _ = d.Write(buf)
	return d.Sum64()
}
