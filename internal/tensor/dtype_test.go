package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/x448/float16"
)

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, 1, Uint8.Size())
	assert.Equal(t, 1, Int8.Size())
	assert.Equal(t, 1, Bool.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 2, Float16.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Int64.Size())
	assert.Equal(t, 8, Float64.Size())
}

func TestDataTypeClassification(t *testing.T) {
	for _, dt := range []DataType{Float16, Float32, Float64} {
		assert.True(t, dt.IsFloating(), "%s", dt)
		assert.False(t, dt.IsIntegral(true), "%s", dt)
	}
	for _, dt := range []DataType{Uint8, Int8, Int16, Int32, Int64} {
		assert.True(t, dt.IsIntegral(false), "%s", dt)
		assert.False(t, dt.IsFloating(), "%s", dt)
	}
	assert.True(t, Bool.IsIntegral(true))
	assert.False(t, Bool.IsIntegral(false))
	assert.False(t, Bool.IsFloating())
}

func TestInferDataType(t *testing.T) {
	assert.Equal(t, Uint8, inferDataType(uint8(0)))
	assert.Equal(t, Int16, inferDataType(int16(0)))
	assert.Equal(t, Int64, inferDataType(int64(0)))
	assert.Equal(t, Float16, inferDataType(float16.Fromfloat32(0)))
	assert.Equal(t, Float32, inferDataType(float32(0)))
	assert.Equal(t, Bool, inferDataType(false))
}
