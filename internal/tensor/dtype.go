// Package tensor provides the platform type layer for the kernels module:
// element types and their promotion rules, shapes, raw tensor buffers, and
// tagged scalar values.
package tensor

import "github.com/x448/float16"

// DType is a constraint for supported tensor element types.
// It uses Go generics to ensure compile-time type safety.
type DType interface {
	~uint8 | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64 | ~bool | float16.Float16
}

// Real is a constraint for the native representations a kernel may compute
// in. Bool and Float16 are storage types only: bool inputs are widened to
// 0/1 and Float16 runs through float32.
type Real interface {
	~uint8 | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// DataType represents runtime type information for tensors.
// The declaration order is the platform promotion order and must stay in
// sync with the table in promote.go.
type DataType int

// Supported data types for tensors.
const (
	Uint8 DataType = iota
	Int8
	Int16
	Int32
	Int64
	Float16
	Float32
	Float64
	Bool

	numDataTypes
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Uint8, Int8, Bool:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// IsFloating reports whether the type is a floating-point representation.
func (dt DataType) IsFloating() bool {
	return dt == Float16 || dt == Float32 || dt == Float64
}

// IsIntegral reports whether the type is an integer representation.
// Bool counts as integral only when includeBool is set.
func (dt DataType) IsIntegral(includeBool bool) bool {
	switch dt {
	case Uint8, Int8, Int16, Int32, Int64:
		return true
	case Bool:
		return includeBool
	default:
		return false
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
