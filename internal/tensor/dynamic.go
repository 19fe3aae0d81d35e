package tensor

import "fmt"

// Interface is the representation-agnostic view of a tensor.
// Every *Tensor[T] implements it; the set of implementations is closed.
//
// Use Create to pick the representation at runtime, and AddAny, SubAny,
// TransposeAny and EqualAny to operate on tensors whose element type is
// not known statically.
type Interface interface {
	Shape() Shape
	DType() DataType
	Rank() int
	NumElements() int

	Value(coord ...int) (Number, error)
	SetValue(value any, coord ...int) error
	Int8At(coord ...int) (int8, error)
	Int16At(coord ...int) (int16, error)
	Float32At(coord ...int) (float32, error)
	NumberAt(coord ...int) (Number, error)

	AddScalarValue(s any) error
	RandomizeValue(src Source, lo, hi any) error
	Hash() uint64
	String() string

	isTensor()
}

// Create allocates a zero-initialized tensor of the given representation.
//
// Example:
//
//	t, err := tensor.Create(Shape{2, 3}, tensor.Int16)
//	_ = t.SetValue(7, 1, 2)
func Create(shape Shape, dtype DataType) (Interface, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	switch dtype {
	case Int8:
		return Zeros[int8](shape), nil
	case Int16:
		return Zeros[int16](shape), nil
	case Float32:
		return Zeros[float32](shape), nil
	case Boxed:
		return Zeros[Number](shape), nil
	default:
		return nil, fmt.Errorf("%w: data type %d", ErrUnsupportedValue, int(dtype))
	}
}

// AddAny adds two tensors of the same representation and shape.
// Different representations fail with ErrShapeMismatch.
func AddAny(a, b Interface) (Interface, error) {
	return binaryAny(a, b, false)
}

// SubAny subtracts b from a. See AddAny.
func SubAny(a, b Interface) (Interface, error) {
	return binaryAny(a, b, true)
}

// TransposeAny transposes a tensor of any representation.
func TransposeAny(t Interface) Interface {
	switch x := t.(type) {
	case *Tensor[int8]:
		return x.Transpose()
	case *Tensor[int16]:
		return x.Transpose()
	case *Tensor[float32]:
		return x.Transpose()
	case *Tensor[Number]:
		return x.Transpose()
	default:
		panic(fmt.Sprintf("unsupported tensor type %T", t))
	}
}

// EqualAny reports value equality across the dynamic view.
// Tensors of different representation are never equal.
func EqualAny(a, b Interface) bool {
	switch x := a.(type) {
	case *Tensor[int8]:
		y, ok := b.(*Tensor[int8])
		return ok && x.Equal(y)
	case *Tensor[int16]:
		y, ok := b.(*Tensor[int16])
		return ok && x.Equal(y)
	case *Tensor[float32]:
		y, ok := b.(*Tensor[float32])
		return ok && x.Equal(y)
	case *Tensor[Number]:
		y, ok := b.(*Tensor[Number])
		return ok && x.Equal(y)
	default:
		return false
	}
}

func binaryAny(a, b Interface, sub bool) (Interface, error) {
	switch x := a.(type) {
	case *Tensor[int8]:
		return binaryTyped(x, b, sub)
	case *Tensor[int16]:
		return binaryTyped(x, b, sub)
	case *Tensor[float32]:
		return binaryTyped(x, b, sub)
	case *Tensor[Number]:
		return binaryTyped(x, b, sub)
	default:
		return nil, fmt.Errorf("%w: unsupported tensor type %T", ErrUnsupportedValue, a)
	}
}

func binaryTyped[T Element](a *Tensor[T], b Interface, sub bool) (Interface, error) {
	other, ok := b.(*Tensor[T])
	if !ok {
		return nil, fmt.Errorf("%w: representation %s vs %s", ErrShapeMismatch, a.DType(), b.DType())
	}

	var (
		result *Tensor[T]
		err    error
	)
	if sub {
		result, err = a.Sub(other)
	} else {
		result, err = a.Add(other)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
