// Package elementwise is the execution core for elementwise numeric
// operations: broadcast resolution, type dispatch, and strided per-element
// iteration. It performs no allocation beyond output resizing and keeps no
// state across calls apart from the memoized kernel specializations.
package elementwise

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/born-ml/kernels/internal/parallel"
	"github.com/born-ml/kernels/internal/tensor"
)

// logger is a no-op unless the embedding application installs one.
var logger = zerolog.Nop()

// SetLogger installs a logger for kernel-cache diagnostics. Call it before
// running operations; it is not synchronized against concurrent calls.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// loopCfg controls chunk parallelism of the per-element loops. Success
// output is deterministic either way; a domain violation in any chunk fails
// the whole call.
var loopCfg = parallel.DefaultConfig()

// SetParallelism overrides the loop parallelism configuration. Mostly useful
// for forcing sequential execution in tests and benchmarks.
func SetParallelism(cfg parallel.Config) {
	loopCfg = cfg
}

func forEach(n int, f func(i int) error) error {
	return parallel.ForErr(n, f, loopCfg)
}

// ApplyBinary applies funcs' leaf for the compute representation to every
// logical coordinate of out in row-major order, broadcasting a and b where
// their extent is 1. Operand values are widened to the compute
// representation before the leaf runs and the result is narrowed into out's
// element type.
//
// out must already have the broadcast target shape (see
// ResizeToBroadcastTarget) and a castable element type; promotion and the
// cast check are the caller's responsibility and happen before dispatch.
func ApplyBinary(funcs BinaryFuncs, compute tensor.DataType, a, b, out *tensor.RawTensor) error {
	target, err := BroadcastShape(a.Shape(), b.Shape())
	if err != nil {
		return fmt.Errorf("%s: %w", funcs.Name, err)
	}
	if !out.Shape().Equal(target) {
		return fmt.Errorf("%s: %w: output shape %v, broadcast target %v",
			funcs.Name, ErrShapeMismatch, out.Shape(), target)
	}

	k, err := binaryKernel(binaryKey{a: a.DType(), b: b.DType(), compute: compute, out: out.DType()})
	if err != nil {
		return fmt.Errorf("%s: %w", funcs.Name, err)
	}
	return k(funcs, a, b, out)
}

// ApplyBinaryScalar applies funcs' leaf with the second operand fixed to the
// scalar s, extracted once into the compute representation. Scalars carry a
// value, not a shape, so input and output have identical element counts and
// the walk is contiguous.
func ApplyBinaryScalar(funcs BinaryFuncs, compute tensor.DataType, s tensor.Scalar, a, out *tensor.RawTensor) error {
	if a.NumElements() != out.NumElements() {
		return fmt.Errorf("%s: %w: input has %d elements, output %d",
			funcs.Name, ErrShapeMismatch, a.NumElements(), out.NumElements())
	}

	k, err := scalarKernel(unaryKey{in: a.DType(), compute: compute, out: out.DType()})
	if err != nil {
		return fmt.Errorf("%s: %w", funcs.Name, err)
	}
	return k(funcs, s, a, out)
}

// ApplyUnary applies funcs' leaf to each of in's elements in index order,
// writing results into out. Contiguous, non-broadcast: in and out must hold
// the same number of elements.
func ApplyUnary(funcs UnaryFuncs, compute tensor.DataType, in, out *tensor.RawTensor) error {
	if in.NumElements() != out.NumElements() {
		return fmt.Errorf("%s: %w: input has %d elements, output %d",
			funcs.Name, ErrShapeMismatch, in.NumElements(), out.NumElements())
	}

	k, err := unaryKernel(unaryKey{in: in.DType(), compute: compute, out: out.DType()})
	if err != nil {
		return fmt.Errorf("%s: %w", funcs.Name, err)
	}
	return k(funcs, in, out)
}
