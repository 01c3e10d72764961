// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the platform type layer consumed by the kernels
// module: element types and their promotion rules, shapes, raw tensor
// buffers, and tagged scalar values.
//
// # Element types
//
// The fixed type set, in promotion order:
//   - uint8, int8, int16, int32, int64 (integers)
//   - float16, float32, float64 (floating point; float16 is storage-only
//     and computes through float32)
//   - bool (storage-only; inputs widen to 0/1)
//
// # Promotion
//
// PromoteTypes resolves the common computation type for two element types
// from a fixed rank table: booleans promote below all integers, same-width
// signed/unsigned mixes promote to the next wider signed type, and integers
// mixed with floats promote to the float. CanCast is the platform policy for
// narrowing the common type into an output type.
//
// # Basic usage
//
//	a, _ := tensor.FromSlice([]int32{5, 7, -3}, tensor.Shape{3})
//	common := tensor.PromoteTypes(a.DType(), tensor.Float32) // float32
package tensor
