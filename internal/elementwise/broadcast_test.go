package elementwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/kernels/internal/tensor"
)

func TestBroadcastShape(t *testing.T) {
	got, err := BroadcastShape(tensor.Shape{1, 3}, tensor.Shape{4, 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{4, 3}, got)

	_, err = BroadcastShape(tensor.Shape{3, 4}, tensor.Shape{3, 5})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestResizeToBroadcastTarget(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{4, 1}, tensor.Int32)
	require.NoError(t, err)
	b, err := tensor.NewRaw(tensor.Shape{3}, tensor.Int32)
	require.NoError(t, err)
	out, err := tensor.NewRaw(tensor.Shape{}, tensor.Int64)
	require.NoError(t, err)

	require.NoError(t, ResizeToBroadcastTarget(a, b, out))
	assert.Equal(t, tensor.Shape{4, 3}, out.Shape())
	assert.Equal(t, tensor.Int64, out.DType(), "resize preserves the output element type")
}

func TestResizeToBroadcastTargetMismatchLeavesOutUnmodified(t *testing.T) {
	a, err := tensor.NewRaw(tensor.Shape{3, 4}, tensor.Float32)
	require.NoError(t, err)
	b, err := tensor.NewRaw(tensor.Shape{3, 5}, tensor.Float32)
	require.NoError(t, err)

	out, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)

	err = ResizeToBroadcastTarget(a, b, out)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, tensor.Shape{2}, out.Shape())
	assert.Equal(t, []float32{1, 2}, out.AsFloat32())
}

func TestBroadcastStrides(t *testing.T) {
	// Extent-1 and padded dimensions contribute stride 0.
	assert.Equal(t, []int{0, 1}, broadcastStrides(tensor.Shape{1, 3}, tensor.Shape{4, 3}))
	assert.Equal(t, []int{0, 1}, broadcastStrides(tensor.Shape{3}, tensor.Shape{4, 3}))
	assert.Equal(t, []int{1, 0}, broadcastStrides(tensor.Shape{4, 1}, tensor.Shape{4, 3}))
	assert.Equal(t, []int{3, 1}, broadcastStrides(tensor.Shape{4, 3}, tensor.Shape{4, 3}))
	assert.Equal(t, []int{0, 0}, broadcastStrides(tensor.Shape{}, tensor.Shape{4, 3}))
}

func TestFlatIndex(t *testing.T) {
	outShape := tensor.Shape{4, 3}
	outStrides := outShape.ComputeStrides()

	// A [1,3] row repeats along the first output dimension.
	rowStrides := broadcastStrides(tensor.Shape{1, 3}, outShape)
	for i := 0; i < outShape.NumElements(); i++ {
		assert.Equal(t, i%3, flatIndex(i, outStrides, rowStrides))
	}

	// A [4,1] column repeats along the second output dimension.
	colStrides := broadcastStrides(tensor.Shape{4, 1}, outShape)
	for i := 0; i < outShape.NumElements(); i++ {
		assert.Equal(t, i/3, flatIndex(i, outStrides, colStrides))
	}
}
