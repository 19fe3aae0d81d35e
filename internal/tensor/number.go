package tensor

import (
	"fmt"
	"math"
	"strconv"
)

type numberKind uint8

const (
	intKind numberKind = iota
	floatKind
)

// Number is the boxed numeric element of a Boxed tensor.
//
// It holds either an integer (int64) or a floating-point (float64) value.
// The zero Number is the integer 0.
type Number struct {
	kind numberKind
	i    int64
	f    float64
}

// Int returns an integer Number.
func Int(v int64) Number {
	return Number{kind: intKind, i: v}
}

// Float returns a floating-point Number.
func Float(v float64) Number {
	return Number{kind: floatKind, f: v}
}

// NumberOf boxes a Go numeric value.
// Non-numeric values are rejected with ErrUnsupportedValue.
//
//nolint:gocyclo,cyclop // One case per Go numeric type
func NumberOf(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint64(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	default:
		return Number{}, fmt.Errorf("%w: %T is not numeric", ErrUnsupportedValue, v)
	}
}

// fromUint64 keeps values above MaxInt64 as floats rather than wrapping them negative.
func fromUint64(v uint64) Number {
	if v > math.MaxInt64 {
		return Float(float64(v))
	}
	return Int(int64(v))
}

// IsFloat reports whether n holds a floating-point value.
func (n Number) IsFloat() bool {
	return n.kind == floatKind
}

// Int64 returns n as an integer. Floats truncate toward zero and saturate
// at the int64 range; NaN converts to 0.
func (n Number) Int64() int64 {
	if n.kind == intKind {
		return n.i
	}
	switch {
	case math.IsNaN(n.f):
		return 0
	case n.f >= math.MaxInt64:
		return math.MaxInt64
	case n.f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(n.f)
	}
}

// Float64 returns n as a float.
func (n Number) Float64() float64 {
	if n.kind == floatKind {
		return n.f
	}
	return float64(n.i)
}

// Add returns n + o. The result is an integer only when both operands are.
func (n Number) Add(o Number) Number {
	if n.kind == intKind && o.kind == intKind {
		return Int(n.i + o.i)
	}
	return Float(n.Float64() + o.Float64())
}

// Sub returns n - o. The result is an integer only when both operands are.
func (n Number) Sub(o Number) Number {
	if n.kind == intKind && o.kind == intKind {
		return Int(n.i - o.i)
	}
	return Float(n.Float64() - o.Float64())
}

// Less reports whether n < o, comparing integers exactly.
func (n Number) Less(o Number) bool {
	if n.kind == intKind && o.kind == intKind {
		return n.i < o.i
	}
	return n.Float64() < o.Float64()
}

// Equal reports whether n and o have the same kind and the same bits.
// Int(1) and Float(1) are different numbers.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	if n.kind == intKind {
		return n.i == o.i
	}
	return math.Float64bits(n.f) == math.Float64bits(o.f)
}

// String returns the decimal form of n.
func (n Number) String() string {
	if n.kind == intKind {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}
