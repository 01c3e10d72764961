package kernels

import (
	"fmt"
	"math"

	"github.com/born-ml/kernels/internal/elementwise"
	"github.com/born-ml/kernels/internal/tensor"
)

// fmodInt is the integral fmod leaf. Go's % operator truncates toward zero,
// matching C fmod for integer operands. A zero divisor is a domain
// violation.
func fmodInt[T integer](a, b T) (T, error) {
	if b == 0 {
		return 0, fmt.Errorf("integral fmod by zero: %w", elementwise.ErrDomainViolation)
	}
	return a % b, nil
}

// fmodFloat is the floating fmod leaf. A zero divisor yields NaN per IEEE
// semantics; no domain check.
func fmodFloat[T float](a, b T) (T, error) {
	return T(math.Mod(float64(a), float64(b))), nil
}

var fmodFuncs = elementwise.BinaryFuncs{
	Name:    "fmod",
	Uint8:   fmodInt[uint8],
	Int8:    fmodInt[int8],
	Int16:   fmodInt[int16],
	Int32:   fmodInt[int32],
	Int64:   fmodInt[int64],
	Float32: fmodFloat[float32],
	Float64: fmodFloat[float64],
}

// FmodTensorOut computes out = fmod(a, b) elementwise with broadcasting.
// The result carries the sign of the dividend (C fmod / truncating
// semantics). out is resized to the broadcast target shape; its element type
// must admit a cast from the promoted common type.
func FmodTensorOut(a, b, out *tensor.RawTensor) error {
	return binaryOut(fmodFuncs, a, b, out)
}

// FmodScalarOut computes out = fmod(a, s) elementwise. An integral zero
// divisor is rejected before any element is computed.
func FmodScalarOut(a *tensor.RawTensor, s tensor.Scalar, out *tensor.RawTensor) error {
	common := tensor.PromoteTypeWithScalar(a.DType(), s)
	if err := checkIntegralDivisor(fmodFuncs.Name, common, s); err != nil {
		return err
	}
	return scalarOut(fmodFuncs, a, s, out)
}
