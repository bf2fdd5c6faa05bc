package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceToBytesLength(t *testing.T) {
	floats := []float32{1, 2, 3, 4}
	assert.Len(t, SliceToBytes(floats), 16)

	assert.Nil(t, SliceToBytes([]float32(nil)))
}

func TestStructToBytesLength(t *testing.T) {
	type vertex struct {
		Position [3]float32
		Color    [3]float32
	}
	v := vertex{}
	assert.Len(t, StructToBytes(&v), 24)
}

func TestStructToBytesMatchesSliceView(t *testing.T) {
	matrix := [16]float32{0: 1, 5: 1, 10: 1, 15: 1}
	assert.Equal(t, SliceToBytes(matrix[:]), StructToBytes(&matrix))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(5), Clamp(5, 0, 10))
	assert.Equal(t, float32(0), Clamp(-1, 0, 10))
	assert.Equal(t, float32(10), Clamp(11, 0, 10))
}
