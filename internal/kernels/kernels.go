// Package kernels implements the portable elementwise operations built on
// the elementwise engine. Every binary operation follows the same shape:
// resize the output to the broadcast target, resolve the common computation
// type, verify it can be cast into the output type, then dispatch.
package kernels

import (
	"fmt"

	"github.com/born-ml/kernels/internal/elementwise"
	"github.com/born-ml/kernels/internal/tensor"
)

// integer and float constrain the generic leaf definitions to one compute
// representation class each.
type integer interface {
	~uint8 | ~int8 | ~int16 | ~int32 | ~int64
}

type float interface {
	~float32 | ~float64
}

// binaryOut runs the tensor-tensor pipeline for funcs.
func binaryOut(funcs elementwise.BinaryFuncs, a, b, out *tensor.RawTensor) error {
	if err := elementwise.ResizeToBroadcastTarget(a, b, out); err != nil {
		return fmt.Errorf("%s: %w", funcs.Name, err)
	}

	common := tensor.PromoteTypes(a.DType(), b.DType())
	if !tensor.CanCast(common, out.DType()) {
		return fmt.Errorf("%s: %s to %s: %w", funcs.Name, common, out.DType(), elementwise.ErrCastNotAllowed)
	}

	return elementwise.ApplyBinary(funcs, common, a, b, out)
}

// scalarOut runs the tensor-scalar pipeline for funcs. Scalars don't
// broadcast a shape, only a value, so the output takes a's shape directly.
func scalarOut(funcs elementwise.BinaryFuncs, a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) error {
	if err := out.Resize(a.Shape()); err != nil {
		return fmt.Errorf("%s: %w", funcs.Name, err)
	}

	common := tensor.PromoteTypeWithScalar(a.DType(), s)
	if !tensor.CanCast(common, out.DType()) {
		return fmt.Errorf("%s: %s to %s: %w", funcs.Name, common, out.DType(), elementwise.ErrCastNotAllowed)
	}

	return elementwise.ApplyBinaryScalar(funcs, common, s, a, out)
}

// checkIntegralDivisor rejects a zero scalar divisor up front when the
// computation runs in an integral representation, before any element of the
// output is touched. Floating divisors are left to IEEE semantics.
func checkIntegralDivisor(name string, common tensor.DataType, s tensor.Scalar) error {
	if common.IsIntegral(true) && tensor.ScalarTo[float64](s) == 0 {
		return fmt.Errorf("%s: integral division by zero scalar: %w", name, elementwise.ErrDomainViolation)
	}
	return nil
}
