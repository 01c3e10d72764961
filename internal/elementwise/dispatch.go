package elementwise

import (
	"fmt"
	"sync"

	"github.com/born-ml/kernels/internal/tensor"
)

// A kernel specialization is fully determined by the runtime tags of its
// slots: operand storage types, the compute representation, and the output
// storage type. Specializations are composed lazily on first use and
// memoized, so the type decision costs one cache lookup per call and nothing
// per element. There is no cross-slot validation here: callers run the
// promotion resolver and the cast check before dispatching.
type (
	binaryKey struct {
		a, b, compute, out tensor.DataType
	}
	unaryKey struct {
		in, compute, out tensor.DataType
	}
)

type (
	binaryApplier func(funcs BinaryFuncs, a, b, out *tensor.RawTensor) error
	scalarApplier func(funcs BinaryFuncs, s tensor.Scalar, a, out *tensor.RawTensor) error
	unaryApplier  func(funcs UnaryFuncs, in, out *tensor.RawTensor) error
)

var (
	binaryCache sync.Map // binaryKey -> binaryApplier
	scalarCache sync.Map // unaryKey -> scalarApplier
	unaryCache  sync.Map // unaryKey -> unaryApplier
)

func binaryKernel(key binaryKey) (binaryApplier, error) {
	if k, ok := binaryCache.Load(key); ok {
		return k.(binaryApplier), nil
	}
	k, err := buildBinaryKernel(key)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Stringer("a", key.a).
		Stringer("b", key.b).
		Stringer("compute", key.compute).
		Stringer("out", key.out).
		Msg("compiled binary kernel specialization")
	binaryCache.Store(key, k)
	return k, nil
}

func scalarKernel(key unaryKey) (scalarApplier, error) {
	if k, ok := scalarCache.Load(key); ok {
		return k.(scalarApplier), nil
	}
	k, err := buildScalarKernel(key)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Stringer("a", key.in).
		Stringer("compute", key.compute).
		Stringer("out", key.out).
		Msg("compiled scalar kernel specialization")
	scalarCache.Store(key, k)
	return k, nil
}

func unaryKernel(key unaryKey) (unaryApplier, error) {
	if k, ok := unaryCache.Load(key); ok {
		return k.(unaryApplier), nil
	}
	k, err := buildUnaryKernel(key)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Stringer("in", key.in).
		Stringer("compute", key.compute).
		Stringer("out", key.out).
		Msg("compiled unary kernel specialization")
	unaryCache.Store(key, k)
	return k, nil
}

// buildBinaryKernel instantiates the applier for key's compute
// representation. Bool is not a computation representation; Float16 has no
// native Go arithmetic, so it computes in float32 and narrows on store.
func buildBinaryKernel(key binaryKey) (binaryApplier, error) {
	switch key.compute {
	case tensor.Uint8:
		return makeBinaryKernel(key, func(f BinaryFuncs) func(uint8, uint8) (uint8, error) { return f.Uint8 })
	case tensor.Int8:
		return makeBinaryKernel(key, func(f BinaryFuncs) func(int8, int8) (int8, error) { return f.Int8 })
	case tensor.Int16:
		return makeBinaryKernel(key, func(f BinaryFuncs) func(int16, int16) (int16, error) { return f.Int16 })
	case tensor.Int32:
		return makeBinaryKernel(key, func(f BinaryFuncs) func(int32, int32) (int32, error) { return f.Int32 })
	case tensor.Int64:
		return makeBinaryKernel(key, func(f BinaryFuncs) func(int64, int64) (int64, error) { return f.Int64 })
	case tensor.Float16, tensor.Float32:
		return makeBinaryKernel(key, func(f BinaryFuncs) func(float32, float32) (float32, error) { return f.Float32 })
	case tensor.Float64:
		return makeBinaryKernel(key, func(f BinaryFuncs) func(float64, float64) (float64, error) { return f.Float64 })
	default:
		return nil, fmt.Errorf("%w: %s as compute type", ErrUnsupportedType, key.compute)
	}
}

func buildScalarKernel(key unaryKey) (scalarApplier, error) {
	switch key.compute {
	case tensor.Uint8:
		return makeScalarKernel(key, func(f BinaryFuncs) func(uint8, uint8) (uint8, error) { return f.Uint8 })
	case tensor.Int8:
		return makeScalarKernel(key, func(f BinaryFuncs) func(int8, int8) (int8, error) { return f.Int8 })
	case tensor.Int16:
		return makeScalarKernel(key, func(f BinaryFuncs) func(int16, int16) (int16, error) { return f.Int16 })
	case tensor.Int32:
		return makeScalarKernel(key, func(f BinaryFuncs) func(int32, int32) (int32, error) { return f.Int32 })
	case tensor.Int64:
		return makeScalarKernel(key, func(f BinaryFuncs) func(int64, int64) (int64, error) { return f.Int64 })
	case tensor.Float16, tensor.Float32:
		return makeScalarKernel(key, func(f BinaryFuncs) func(float32, float32) (float32, error) { return f.Float32 })
	case tensor.Float64:
		return makeScalarKernel(key, func(f BinaryFuncs) func(float64, float64) (float64, error) { return f.Float64 })
	default:
		return nil, fmt.Errorf("%w: %s as compute type", ErrUnsupportedType, key.compute)
	}
}

func buildUnaryKernel(key unaryKey) (unaryApplier, error) {
	switch key.compute {
	case tensor.Uint8:
		return makeUnaryKernel(key, func(f UnaryFuncs) func(uint8) (uint8, error) { return f.Uint8 })
	case tensor.Int8:
		return makeUnaryKernel(key, func(f UnaryFuncs) func(int8) (int8, error) { return f.Int8 })
	case tensor.Int16:
		return makeUnaryKernel(key, func(f UnaryFuncs) func(int16) (int16, error) { return f.Int16 })
	case tensor.Int32:
		return makeUnaryKernel(key, func(f UnaryFuncs) func(int32) (int32, error) { return f.Int32 })
	case tensor.Int64:
		return makeUnaryKernel(key, func(f UnaryFuncs) func(int64) (int64, error) { return f.Int64 })
	case tensor.Float16, tensor.Float32:
		return makeUnaryKernel(key, func(f UnaryFuncs) func(float32) (float32, error) { return f.Float32 })
	case tensor.Float64:
		return makeUnaryKernel(key, func(f UnaryFuncs) func(float64) (float64, error) { return f.Float64 })
	default:
		return nil, fmt.Errorf("%w: %s as compute type", ErrUnsupportedType, key.compute)
	}
}

func makeBinaryKernel[T tensor.Real](key binaryKey, pick func(BinaryFuncs) func(T, T) (T, error)) (binaryApplier, error) {
	loadA, err := loaderFor[T](key.a)
	if err != nil {
		return nil, err
	}
	loadB, err := loaderFor[T](key.b)
	if err != nil {
		return nil, err
	}
	store, err := storerFor[T](key.out)
	if err != nil {
		return nil, err
	}

	return func(funcs BinaryFuncs, a, b, out *tensor.RawTensor) error {
		fn := pick(funcs)
		if fn == nil {
			return fmt.Errorf("%s: %w: no %s leaf", funcs.Name, ErrUnsupportedType, key.compute)
		}

		readA, readB, write := loadA(a), loadB(b), store(out)
		outShape := out.Shape()
		n := outShape.NumElements()

		if a.Shape().Equal(outShape) && b.Shape().Equal(outShape) {
			// Same shapes: contiguous walk, no broadcast index math.
			return forEach(n, func(i int) error {
				v, err := fn(readA(i), readB(i))
				if err != nil {
					return fmt.Errorf("%s: element %d: %w", funcs.Name, i, err)
				}
				write(i, v)
				return nil
			})
		}

		outStrides := outShape.ComputeStrides()
		aStrides := broadcastStrides(a.Shape(), outShape)
		bStrides := broadcastStrides(b.Shape(), outShape)

		return forEach(n, func(i int) error {
			v, err := fn(
				readA(flatIndex(i, outStrides, aStrides)),
				readB(flatIndex(i, outStrides, bStrides)),
			)
			if err != nil {
				return fmt.Errorf("%s: element %d: %w", funcs.Name, i, err)
			}
			write(i, v)
			return nil
		})
	}, nil
}

func makeScalarKernel[T tensor.Real](key unaryKey, pick func(BinaryFuncs) func(T, T) (T, error)) (scalarApplier, error) {
	load, err := loaderFor[T](key.in)
	if err != nil {
		return nil, err
	}
	store, err := storerFor[T](key.out)
	if err != nil {
		return nil, err
	}

	return func(funcs BinaryFuncs, s tensor.Scalar, a, out *tensor.RawTensor) error {
		fn := pick(funcs)
		if fn == nil {
			return fmt.Errorf("%s: %w: no %s leaf", funcs.Name, ErrUnsupportedType, key.compute)
		}

		// The scalar is extracted into the compute representation exactly
		// once; the per-element function stays context free.
		vb := tensor.ScalarTo[T](s)
		read, write := load(a), store(out)

		return forEach(out.NumElements(), func(i int) error {
			v, err := fn(read(i), vb)
			if err != nil {
				return fmt.Errorf("%s: element %d: %w", funcs.Name, i, err)
			}
			write(i, v)
			return nil
		})
	}, nil
}

func makeUnaryKernel[T tensor.Real](key unaryKey, pick func(UnaryFuncs) func(T) (T, error)) (unaryApplier, error) {
	load, err := loaderFor[T](key.in)
	if err != nil {
		return nil, err
	}
	store, err := storerFor[T](key.out)
	if err != nil {
		return nil, err
	}

	return func(funcs UnaryFuncs, in, out *tensor.RawTensor) error {
		fn := pick(funcs)
		if fn == nil {
			return fmt.Errorf("%s: %w: no %s leaf", funcs.Name, ErrUnsupportedType, key.compute)
		}

		read, write := load(in), store(out)

		return forEach(out.NumElements(), func(i int) error {
			v, err := fn(read(i))
			if err != nil {
				return fmt.Errorf("%s: element %d: %w", funcs.Name, i, err)
			}
			write(i, v)
			return nil
		})
	}, nil
}
