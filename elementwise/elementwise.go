// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package elementwise exposes the elementwise execution core: broadcast
// resolution, combinatorial type dispatch, and the appliers that drive a
// caller-supplied per-element function over possibly differently typed and
// differently shaped operands.
//
// A kernel call is a stateless pipeline: resolve the broadcast target and
// resize the output, resolve the common computation type, check it casts
// into the output type, then apply. The only state kept between calls is the
// memoized table of kernel specializations, keyed by the tuple of resolved
// type tags.
package elementwise

import (
	"github.com/rs/zerolog"

	"github.com/born-ml/kernels/internal/elementwise"
	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/tensor"
)

// Errors surfaced by the engine. All are unrecoverable at this layer.
var (
	ErrShapeMismatch   = elementwise.ErrShapeMismatch
	ErrUnsupportedType = elementwise.ErrUnsupportedType
	ErrCastNotAllowed  = elementwise.ErrCastNotAllowed
	ErrDomainViolation = elementwise.ErrDomainViolation
)

// BinaryFuncs holds one leaf instantiation of a binary operation per compute
// representation.
type BinaryFuncs = elementwise.BinaryFuncs

// UnaryFuncs is the unary counterpart of BinaryFuncs.
type UnaryFuncs = elementwise.UnaryFuncs

// ParallelConfig controls chunk parallelism of the per-element loops.
type ParallelConfig = parallel.Config

// BroadcastShape computes the broadcast-compatible output shape of two
// operand shapes, or fails with ErrShapeMismatch.
func BroadcastShape(a, b tensor.Shape) (tensor.Shape, error) {
	return elementwise.BroadcastShape(a, b)
}

// ResizeToBroadcastTarget resizes out to the broadcast target shape of a
// and b.
func ResizeToBroadcastTarget(a, b, out *tensor.RawTensor) error {
	return elementwise.ResizeToBroadcastTarget(a, b, out)
}

// ApplyBinary applies funcs' leaf over every logical coordinate of out with
// broadcasting.
func ApplyBinary(funcs BinaryFuncs, compute tensor.DataType, a, b, out *tensor.RawTensor) error {
	return elementwise.ApplyBinary(funcs, compute, a, b, out)
}

// ApplyBinaryScalar applies funcs' leaf with the second operand fixed to the
// scalar s.
func ApplyBinaryScalar(funcs BinaryFuncs, compute tensor.DataType, s tensor.Scalar, a, out *tensor.RawTensor) error {
	return elementwise.ApplyBinaryScalar(funcs, compute, s, a, out)
}

// ApplyUnary applies funcs' leaf to each element of in, writing into out.
func ApplyUnary(funcs UnaryFuncs, compute tensor.DataType, in, out *tensor.RawTensor) error {
	return elementwise.ApplyUnary(funcs, compute, in, out)
}

// SetLogger installs a logger for kernel-cache diagnostics.
func SetLogger(l zerolog.Logger) {
	elementwise.SetLogger(l)
}

// SetParallelism overrides the per-element loop parallelism configuration.
func SetParallelism(cfg ParallelConfig) {
	elementwise.SetParallelism(cfg)
}

// DefaultParallelism returns the default loop parallelism configuration.
func DefaultParallelism() ParallelConfig {
	return parallel.DefaultConfig()
}
