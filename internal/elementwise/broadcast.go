package elementwise

import (
	"fmt"

	"github.com/born-ml/kernels/internal/tensor"
)

// BroadcastShape computes the broadcast-compatible output shape of two
// operand shapes, or fails with ErrShapeMismatch.
func BroadcastShape(a, b tensor.Shape) (tensor.Shape, error) {
	out, _, err := tensor.BroadcastShapes(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a, b)
	}
	return out, nil
}

// ResizeToBroadcastTarget resizes out to the broadcast target shape of a and
// b, preserving out's element type. out is left unmodified when the operand
// shapes are incompatible.
func ResizeToBroadcastTarget(a, b, out *tensor.RawTensor) error {
	target, err := BroadcastShape(a.Shape(), b.Shape())
	if err != nil {
		return err
	}
	return out.Resize(target)
}

// broadcastStrides computes strides for reading inShape as if it were
// broadcast to outShape: missing leading dimensions and extent-1 dimensions
// get stride 0, so their coordinate contributes nothing to the source index.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim

	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat output index to a flat source index.
// outStrides are the output shape's row-major strides; inStrides are the
// broadcast-adjusted strides of the source.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	idx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		idx += coord * inStrides[i]
	}
	return idx
}
