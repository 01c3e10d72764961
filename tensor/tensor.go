// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/kernels/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor element types.
type DType = tensor.DType

// Real is a constraint for the native compute representations.
type Real = tensor.Real

// DataType represents the underlying element type of a tensor.
type DataType = tensor.DataType

// Data type constants, in promotion order.
const (
	Uint8   DataType = tensor.Uint8
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: a shaped, typed,
// contiguous buffer with exclusive ownership of its storage.
type RawTensor = tensor.RawTensor

// Scalar is a single tagged numeric value.
type Scalar = tensor.Scalar

// NewRaw creates a zero-initialized tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromSlice creates a tensor from a Go slice, inferring the element type.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// BroadcastShapes resolves two shapes under NumPy-style broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, bool, error) {
	return tensor.BroadcastShapes(a, b)
}

// PromoteTypes returns the common computation type for two element types.
func PromoteTypes(a, b DataType) DataType {
	return tensor.PromoteTypes(a, b)
}

// PromoteTypeWithScalar returns the common computation type for a tensor
// element type combined with a scalar.
func PromoteTypeWithScalar(t DataType, s Scalar) DataType {
	return tensor.PromoteTypeWithScalar(t, s)
}

// CanCast reports whether the platform cast-safety policy allows writing
// values of type from into storage of type to.
func CanCast(from, to DataType) bool {
	return tensor.CanCast(from, to)
}

// ScalarBool constructs a boolean scalar.
func ScalarBool(v bool) Scalar { return tensor.ScalarBool(v) }

// ScalarInt constructs an integral scalar.
func ScalarInt(v int64) Scalar { return tensor.ScalarInt(v) }

// ScalarFloat constructs a floating scalar.
func ScalarFloat(v float64) Scalar { return tensor.ScalarFloat(v) }

// ScalarTo converts a scalar to the native representation T.
func ScalarTo[T Real](s Scalar) T { return tensor.ScalarTo[T](s) }
