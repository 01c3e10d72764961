package tensor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allTypes = []DataType{Uint8, Int8, Int16, Int32, Int64, Float16, Float32, Float64, Bool}

func TestPromoteTypesTotalAndCommutative(t *testing.T) {
	for _, a := range allTypes {
		for _, b := range allTypes {
			ab := PromoteTypes(a, b)
			ba := PromoteTypes(b, a)
			assert.Equal(t, ab, ba, "promote(%s, %s) not commutative", a, b)
			assert.True(t, ab >= 0 && ab < numDataTypes, "promote(%s, %s) out of range", a, b)
		}
	}
}

func TestPromoteTypesIdentity(t *testing.T) {
	for _, a := range allTypes {
		assert.Equal(t, a, PromoteTypes(a, a), "promote(%s, %s)", a, a)
	}
}

func TestPromoteTypesPins(t *testing.T) {
	tests := []struct {
		a, b, want DataType
	}{
		// Same-width signed/unsigned mix widens to signed.
		{Uint8, Int8, Int16},
		// Bool promotes below every integer type.
		{Bool, Uint8, Uint8},
		{Bool, Int8, Int8},
		{Bool, Int32, Int32},
		// Integer widening.
		{Uint8, Int16, Int16},
		{Int8, Int64, Int64},
		{Int16, Int32, Int32},
		// Any integer with any float yields the float.
		{Int64, Float16, Float16},
		{Int32, Float32, Float32},
		{Uint8, Float64, Float64},
		// Two floats yield the wider float.
		{Float16, Float32, Float32},
		{Float32, Float64, Float64},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s+%s", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, PromoteTypes(tt.a, tt.b))
		})
	}
}

func TestPromoteTypeWithScalar(t *testing.T) {
	// An integral scalar never pulls a floating tensor away from its type.
	assert.Equal(t, Float32, PromoteTypeWithScalar(Float32, ScalarInt(2)))
	assert.Equal(t, Float16, PromoteTypeWithScalar(Float16, ScalarInt(7)))

	// An integral scalar folds in as Int64.
	assert.Equal(t, Int64, PromoteTypeWithScalar(Int32, ScalarInt(2)))
	assert.Equal(t, Int64, PromoteTypeWithScalar(Uint8, ScalarInt(2)))

	// A float-tagged scalar forces float promotion against an integer
	// tensor, even for a value an int would hold. Pinned behavior: the
	// scalar's tag participates in the rank lookup exactly like a tensor
	// type.
	assert.Equal(t, Float64, PromoteTypeWithScalar(Int32, ScalarFloat(2)))

	// A bool scalar is inert against everything but bool.
	assert.Equal(t, Int16, PromoteTypeWithScalar(Int16, ScalarBool(true)))
	assert.Equal(t, Float32, PromoteTypeWithScalar(Float32, ScalarBool(false)))
	assert.Equal(t, Bool, PromoteTypeWithScalar(Bool, ScalarBool(true)))
}

func TestCanCast(t *testing.T) {
	// Floating values may not narrow into integer storage.
	assert.False(t, CanCast(Float32, Int32))
	assert.False(t, CanCast(Float64, Uint8))
	assert.False(t, CanCast(Float16, Int64))

	// Nothing but bool casts to bool.
	assert.False(t, CanCast(Int32, Bool))
	assert.False(t, CanCast(Float64, Bool))
	assert.True(t, CanCast(Bool, Bool))

	// Everything else is allowed, including lossy integer narrowing and
	// float narrowing.
	assert.True(t, CanCast(Int64, Uint8))
	assert.True(t, CanCast(Int32, Float32))
	assert.True(t, CanCast(Float64, Float16))
	assert.True(t, CanCast(Bool, Int8))
}
