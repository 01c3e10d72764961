package kernels

import (
	"fmt"

	"github.com/born-ml/kernels/internal/elementwise"
	"github.com/born-ml/kernels/internal/tensor"
)

// negReal negates in any compute representation. Unsigned representations
// wrap (two's complement), matching the platform's integer semantics.
func negReal[T tensor.Real](a T) (T, error) {
	return -a, nil
}

var negFuncs = elementwise.UnaryFuncs{
	Name:    "neg",
	Uint8:   negReal[uint8],
	Int8:    negReal[int8],
	Int16:   negReal[int16],
	Int32:   negReal[int32],
	Int64:   negReal[int64],
	Float32: negReal[float32],
	Float64: negReal[float64],
}

// NegOut computes out = -in elementwise. Unary promotion is the identity, so
// the computation runs in in's own type; Bool input is rejected because it
// is not a computation representation.
func NegOut(in, out *tensor.RawTensor) error {
	if err := out.Resize(in.Shape()); err != nil {
		return fmt.Errorf("%s: %w", negFuncs.Name, err)
	}

	common := in.DType()
	if !tensor.CanCast(common, out.DType()) {
		return fmt.Errorf("%s: %s to %s: %w", negFuncs.Name, common, out.DType(), elementwise.ErrCastNotAllowed)
	}

	return elementwise.ApplyUnary(negFuncs, common, in, out)
}
