package tensor

import (
	"encoding/binary"
	"math"
)

// elementOps is the per-representation dispatch table.
// Everything that depends on the concrete element type goes through it.
type elementOps[T Element] struct {
	add    func(a, b T) T
	sub    func(a, b T) T
	equal  func(a, b T) bool
	bits   func(buf []byte, v T) []byte
	box    func(v T) Number
	unbox  func(n Number) T
	random func(src Source, lo, hi T) T
}

var (
	int8Ops    = integerOps[int8]()
	int16Ops   = integerOps[int16]()
	float32Ops = elementOps[float32]{
		add:   func(a, b float32) float32 { return a + b },
		sub:   func(a, b float32) float32 { return a - b },
		equal: func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) },
		bits: func(buf []byte, v float32) []byte {
			return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		},
		box:   func(v float32) Number { return Float(float64(v)) },
		unbox: func(n Number) float32 { return float32(n.Float64()) },
		random: func(src Source, lo, hi float32) float32 {
			if !(lo < hi) {
				return lo
			}
			// the span is taken in float64 so wide ranges do not overflow to +Inf
			v := float32(float64(lo) + src.Float64()*(float64(hi)-float64(lo)))
			if v >= hi {
				// float32 rounding can land on hi; keep the range half-open
				v = math.Nextafter32(hi, lo)
			}
			return v
		},
	}
	numberOps = elementOps[Number]{
		add:   Number.Add,
		sub:   Number.Sub,
		equal: Number.Equal,
		bits: func(buf []byte, v Number) []byte {
			buf = append(buf, byte(v.kind))
			if v.kind == intKind {
				return binary.LittleEndian.AppendUint64(buf, uint64(v.i))
			}
			return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.f))
		},
		box:    func(v Number) Number { return v },
		unbox:  func(n Number) Number { return n },
		random: randomNumber,
	}
)

// integerOps builds the dispatch table for the narrow integer representations.
// Arithmetic wraps on overflow and conversions from Number truncate toward zero.
func integerOps[T int8 | int16]() elementOps[T] {
	return elementOps[T]{
		add:   func(a, b T) T { return a + b },
		sub:   func(a, b T) T { return a - b },
		equal: func(a, b T) bool { return a == b },
		bits: func(buf []byte, v T) []byte {
			return binary.LittleEndian.AppendUint16(buf, uint16(v)) //nolint:gosec // G115: bit pattern only
		},
		box:   func(v T) Number { return Int(int64(v)) },
		unbox: func(n Number) T { return T(n.Int64()) }, //nolint:gosec // G115: narrowing wraps
		random: func(src Source, lo, hi T) T {
			if lo >= hi {
				return lo
			}
			return lo + T(src.Int64N(int64(hi)-int64(lo))) //nolint:gosec // G115: result < hi-lo
		},
	}
}

// randomNumber draws an integer when both bounds are integers, otherwise a float.
func randomNumber(src Source, lo, hi Number) Number {
	if !lo.Less(hi) {
		return lo
	}
	if lo.kind == intKind && hi.kind == intKind {
		// hi-lo can overflow int64 for extreme bounds; fall back to a float draw then.
		if span := hi.i - lo.i; span > 0 {
			return Int(lo.i + src.Int64N(span))
		}
	}
	l, h := lo.Float64(), hi.Float64()
	u := src.Float64()
	v := l*(1-u) + h*u
	switch {
	case v >= h:
		v = math.Nextafter(h, l)
	case v < l:
		v = l
	}
	return Float(v)
}

// opsFor returns the dispatch table for T.
func opsFor[T Element]() elementOps[T] {
	var dummy T
	switch any(dummy).(type) {
	case int8:
		return any(int8Ops).(elementOps[T])
	case int16:
		return any(int16Ops).(elementOps[T])
	case float32:
		return any(float32Ops).(elementOps[T])
	case Number:
		return any(numberOps).(elementOps[T])
	default:
		panic("unsupported type")
	}
}
