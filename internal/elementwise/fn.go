package elementwise

// BinaryFuncs holds one leaf instantiation of a binary operation per compute
// representation. Operations typically fill the integer fields from one
// generic definition and the float fields from another. The dispatcher picks
// the field matching the resolved common type; a nil field means the
// operation does not support that representation and fails with
// ErrUnsupportedType.
//
// Leaf functions must be pure and position independent. A non-nil error
// aborts the whole call before the failing element is written.
type BinaryFuncs struct {
	Name string // Operation name, used in errors and diagnostics.

	Uint8   func(a, b uint8) (uint8, error)
	Int8    func(a, b int8) (int8, error)
	Int16   func(a, b int16) (int16, error)
	Int32   func(a, b int32) (int32, error)
	Int64   func(a, b int64) (int64, error)
	Float32 func(a, b float32) (float32, error)
	Float64 func(a, b float64) (float64, error)
}

// UnaryFuncs is the unary counterpart of BinaryFuncs.
type UnaryFuncs struct {
	Name string

	Uint8   func(a uint8) (uint8, error)
	Int8    func(a int8) (int8, error)
	Int16   func(a int16) (int16, error)
	Int32   func(a int32) (int32, error)
	Int64   func(a int64) (int64, error)
	Float32 func(a float32) (float32, error)
	Float64 func(a float64) (float64, error)
}
