// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernels provides the portable elementwise operations built on the
// elementwise execution core. Each operation writes into a caller-owned
// output tensor, resizing it to the broadcast target shape and narrowing the
// promoted computation into the output's element type.
//
// Example:
//
//	a, _ := tensor.FromSlice([]int32{5, 7, -3}, tensor.Shape{3})
//	b, _ := tensor.FromSlice([]int32{2, 2, 2}, tensor.Shape{3})
//	out, _ := tensor.NewRaw(tensor.Shape{3}, tensor.Int32)
//	if err := kernels.FmodTensorOut(a, b, out); err != nil {
//	    ...
//	}
//	out.AsInt32() // [1 1 -1]
package kernels

import (
	"github.com/born-ml/kernels/internal/kernels"
	"github.com/born-ml/kernels/tensor"
)

// FmodTensorOut computes out = fmod(a, b) elementwise with broadcasting;
// the result carries the dividend's sign.
func FmodTensorOut(a, b, out *tensor.RawTensor) error {
	return kernels.FmodTensorOut(a, b, out)
}

// FmodScalarOut computes out = fmod(a, s) elementwise.
func FmodScalarOut(a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) error {
	return kernels.FmodScalarOut(a, s, out)
}

// RemainderTensorOut computes out = a mod b elementwise with broadcasting;
// a nonzero result carries the divisor's sign.
func RemainderTensorOut(a, b, out *tensor.RawTensor) error {
	return kernels.RemainderTensorOut(a, b, out)
}

// RemainderScalarOut computes out = a mod s elementwise.
func RemainderScalarOut(a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) error {
	return kernels.RemainderScalarOut(a, s, out)
}

// NegOut computes out = -in elementwise.
func NegOut(in, out *tensor.RawTensor) error {
	return kernels.NegOut(in, out)
}
