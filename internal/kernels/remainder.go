package kernels

import (
	"fmt"
	"math"

	"github.com/born-ml/kernels/internal/elementwise"
	"github.com/born-ml/kernels/internal/tensor"
)

// remainderInt is the integral remainder leaf with floor semantics: a
// nonzero result takes the divisor's sign. The sign adjustment is a no-op
// for unsigned representations.
func remainderInt[T integer](a, b T) (T, error) {
	if b == 0 {
		return 0, fmt.Errorf("integral remainder by zero: %w", elementwise.ErrDomainViolation)
	}
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

// remainderFloat is the floating remainder leaf. NaN from a zero divisor
// passes through unadjusted.
func remainderFloat[T float](a, b T) (T, error) {
	r := T(math.Mod(float64(a), float64(b)))
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r, nil
}

var remainderFuncs = elementwise.BinaryFuncs{
	Name:    "remainder",
	Uint8:   remainderInt[uint8],
	Int8:    remainderInt[int8],
	Int16:   remainderInt[int16],
	Int32:   remainderInt[int32],
	Int64:   remainderInt[int64],
	Float32: remainderFloat[float32],
	Float64: remainderFloat[float64],
}

// RemainderTensorOut computes out = a mod b elementwise with broadcasting.
// Unlike FmodTensorOut, a nonzero result takes the sign of the divisor
// (floor-mod semantics).
func RemainderTensorOut(a, b, out *tensor.RawTensor) error {
	return binaryOut(remainderFuncs, a, b, out)
}

// RemainderScalarOut computes out = a mod s elementwise. An integral zero
// divisor is rejected before any element is computed.
func RemainderScalarOut(a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) error {
	common := tensor.PromoteTypeWithScalar(a.DType(), s)
	if err := checkIntegralDivisor(remainderFuncs.Name, common, s); err != nil {
		return err
	}
	return scalarOut(remainderFuncs, a, s, out)
}
