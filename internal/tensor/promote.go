package tensor

// promoteTable is the fixed platform promotion table, indexed by the
// DataType declaration order. Booleans promote below all integer types,
// same-width signed/unsigned integer mixes promote to the next wider signed
// type, and any integer mixed with a floating type yields that floating
// type.
var promoteTable = [numDataTypes][numDataTypes]DataType{
	Uint8:   {Uint8, Int16, Int16, Int32, Int64, Float16, Float32, Float64, Uint8},
	Int8:    {Int16, Int8, Int16, Int32, Int64, Float16, Float32, Float64, Int8},
	Int16:   {Int16, Int16, Int16, Int32, Int64, Float16, Float32, Float64, Int16},
	Int32:   {Int32, Int32, Int32, Int32, Int64, Float16, Float32, Float64, Int32},
	Int64:   {Int64, Int64, Int64, Int64, Int64, Float16, Float32, Float64, Int64},
	Float16: {Float16, Float16, Float16, Float16, Float16, Float16, Float32, Float64, Float16},
	Float32: {Float32, Float32, Float32, Float32, Float32, Float32, Float32, Float64, Float32},
	Float64: {Float64, Float64, Float64, Float64, Float64, Float64, Float64, Float64, Float64},
	Bool:    {Uint8, Int8, Int16, Int32, Int64, Float16, Float32, Float64, Bool},
}

// PromoteTypes returns the common computation type for two element types.
// It is total over the DataType set, commutative, and PromoteTypes(T, T) == T
// for every T. Panics on a tag outside the platform set.
func PromoteTypes(a, b DataType) DataType {
	if a < 0 || a >= numDataTypes || b < 0 || b >= numDataTypes {
		panic("promoteTypes: unknown data type")
	}
	return promoteTable[a][b]
}

// PromoteTypeWithScalar returns the common computation type for a tensor
// element type combined with a scalar. The scalar's own tag (Bool, Int64 or
// Float64) participates in the same table lookup a tensor type would.
func PromoteTypeWithScalar(t DataType, s Scalar) DataType {
	return PromoteTypes(t, s.DType())
}

// CanCast reports whether values of type from can be written into storage of
// type to under the platform cast-safety policy: floating values may not be
// cast to integer storage, and nothing but bool may be cast to bool storage.
func CanCast(from, to DataType) bool {
	if from.IsFloating() && to.IsIntegral(false) {
		return false
	}
	if from != Bool && to == Bool {
		return false
	}
	return true
}
