package tensor

import "fmt"

// scalarKind tags the internal representation of a Scalar.
type scalarKind int

const (
	scalarBool scalarKind = iota
	scalarInt
	scalarFloat
)

// Scalar is a single tagged numeric value: boolean, integral or floating.
// Immutable once constructed. Unlike a tensor it carries a value, not a
// shape, so it never broadcasts a dimension.
type Scalar struct {
	kind scalarKind
	b    bool
	i    int64
	f    float64
}

// ScalarBool constructs a boolean scalar.
func ScalarBool(v bool) Scalar {
	return Scalar{kind: scalarBool, b: v}
}

// ScalarInt constructs an integral scalar.
func ScalarInt(v int64) Scalar {
	return Scalar{kind: scalarInt, i: v}
}

// ScalarFloat constructs a floating scalar.
func ScalarFloat(v float64) Scalar {
	return Scalar{kind: scalarFloat, f: v}
}

// DType returns the tag of the scalar's own representation: Bool, Int64 or
// Float64.
func (s Scalar) DType() DataType {
	switch s.kind {
	case scalarBool:
		return Bool
	case scalarInt:
		return Int64
	default:
		return Float64
	}
}

// String returns a human-readable representation of the scalar.
func (s Scalar) String() string {
	switch s.kind {
	case scalarBool:
		return fmt.Sprintf("Scalar[bool](%t)", s.b)
	case scalarInt:
		return fmt.Sprintf("Scalar[int64](%d)", s.i)
	default:
		return fmt.Sprintf("Scalar[float64](%g)", s.f)
	}
}

// ScalarTo converts the scalar to the native representation T using the
// platform's standard numeric conversion. Booleans map to 0/1. No range
// validation is performed; domain checks are the leaf operation's concern.
func ScalarTo[T Real](s Scalar) T {
	switch s.kind {
	case scalarBool:
		if s.b {
			return 1
		}
		return 0
	case scalarInt:
		return T(s.i)
	default:
		return T(s.f)
	}
}
