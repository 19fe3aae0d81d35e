// Package tensor provides the core tensor types and operations for the Volgyerdo neural toolkit.
package tensor

import "unsafe"

// Element is a constraint for supported tensor element representations.
// It uses Go generics so each representation shares one implementation
// of indexing, arithmetic and transpose.
type Element interface {
	int8 | int16 | float32 | Number
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Int8 DataType = iota
	Int16
	Float32
	Boxed
)

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8:
		return 1
	case Int16:
		return 2
	case Float32:
		return 4
	case Boxed:
		return int(unsafe.Sizeof(Number{}))
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Float32:
		return "float32"
	case Boxed:
		return "boxed"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T Element]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case float32:
		return Float32
	case Number:
		return Boxed
	default:
		panic("unsupported type")
	}
}
