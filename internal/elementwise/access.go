package elementwise

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/born-ml/kernels/internal/tensor"
)

// loader produces an indexed reader over a tensor's elements, widened to the
// compute representation T. storer is the write-side counterpart, narrowing
// compute values into the tensor's storage representation.
type (
	loader[T tensor.Real] func(r *tensor.RawTensor) func(i int) T
	storer[T tensor.Real] func(r *tensor.RawTensor) func(i int, v T)
)

// loaderFor resolves the loader for an input slot of element type dt.
// Every real type plus Bool (read as 0/1) and Float16 (widened through
// float32) is a valid input representation.
func loaderFor[T tensor.Real](dt tensor.DataType) (loader[T], error) {
	switch dt {
	case tensor.Uint8:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsUint8()
			return func(i int) T { return T(src[i]) }
		}, nil
	case tensor.Int8:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsInt8()
			return func(i int) T { return T(src[i]) }
		}, nil
	case tensor.Int16:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsInt16()
			return func(i int) T { return T(src[i]) }
		}, nil
	case tensor.Int32:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsInt32()
			return func(i int) T { return T(src[i]) }
		}, nil
	case tensor.Int64:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsInt64()
			return func(i int) T { return T(src[i]) }
		}, nil
	case tensor.Float16:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsFloat16()
			return func(i int) T { return T(src[i].Float32()) }
		}, nil
	case tensor.Float32:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsFloat32()
			return func(i int) T { return T(src[i]) }
		}, nil
	case tensor.Float64:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsFloat64()
			return func(i int) T { return T(src[i]) }
		}, nil
	case tensor.Bool:
		return func(r *tensor.RawTensor) func(int) T {
			src := r.AsBool()
			return func(i int) T {
				if src[i] {
					return 1
				}
				return 0
			}
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s as input type", ErrUnsupportedType, dt)
	}
}

// storerFor resolves the storer for an output slot of element type dt.
// Bool is not a valid output representation.
func storerFor[T tensor.Real](dt tensor.DataType) (storer[T], error) {
	switch dt {
	case tensor.Uint8:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsUint8()
			return func(i int, v T) { dst[i] = uint8(v) }
		}, nil
	case tensor.Int8:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsInt8()
			return func(i int, v T) { dst[i] = int8(v) }
		}, nil
	case tensor.Int16:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsInt16()
			return func(i int, v T) { dst[i] = int16(v) }
		}, nil
	case tensor.Int32:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsInt32()
			return func(i int, v T) { dst[i] = int32(v) }
		}, nil
	case tensor.Int64:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsInt64()
			return func(i int, v T) { dst[i] = int64(v) }
		}, nil
	case tensor.Float16:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsFloat16()
			return func(i int, v T) { dst[i] = float16.Fromfloat32(float32(v)) }
		}, nil
	case tensor.Float32:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsFloat32()
			return func(i int, v T) { dst[i] = float32(v) }
		}, nil
	case tensor.Float64:
		return func(r *tensor.RawTensor) func(int, T) {
			dst := r.AsFloat64()
			return func(i int, v T) { dst[i] = float64(v) }
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s as output type", ErrUnsupportedType, dt)
	}
}
