package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDegreeRadianConversion(t *testing.T) {
	assert.InDelta(t, K_PI, DegreeToRadian(180), 1e-6)
	assert.InDelta(t, K_HALF_PI, DegreeToRadian(90), 1e-6)
	assert.InDelta(t, 45, RadianToDegree(K_QUARTER_PI), 1e-4)
	assert.InDelta(t, 123.5, RadianToDegree(DegreeToRadian(123.5)), 1e-4)
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float32
		expected float32
	}{
		{"same", 1, 1, 0},
		{"quarter", 0, 90, 90},
		{"wraps around", 10, 350, 20},
		{"half", 0, 180, 180},
		{"reversed", 270, 0, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleBetween(DegreeToRadian(tt.a), DegreeToRadian(tt.b))
			assert.InDelta(t, tt.expected, RadianToDegree(got), 1e-3)
			assert.GreaterOrEqual(t, got, float32(0))
			assert.LessOrEqual(t, got, K_PI+1e-6)
		})
	}
}

func TestIsNumberEqual(t *testing.T) {
	assert.True(t, IsNumberEqual(1.0, 1.00001, 0.0001))
	assert.True(t, IsNumberEqual(1.0, 1.5, 0.5))
	assert.False(t, IsNumberEqual(1.0, 1.6, 0.5))
	assert.True(t, IsNumberZero(-0.5, 0.5))
	assert.False(t, IsNumberZero(0.51, 0.5))
}

func TestClampSaturate(t *testing.T) {
	assert.Equal(t, 5, Clamp(7, 0, 5))
	assert.Equal(t, 0, Clamp(-3, 0, 5))
	assert.Equal(t, float32(2.5), Clamp[float32](2.5, 0, 5))
	assert.Equal(t, float32(0), Saturate(-0.1))
	assert.Equal(t, float32(1), Saturate(1.1))
	assert.Equal(t, float32(0.3), Saturate(0.3))
	assert.Equal(t, 2, Min(2, 3))
	assert.Equal(t, 3, Max(2, 3))
}

func TestScalarHelpers(t *testing.T) {
	assert.Equal(t, float32(15), Lerp(10, 20, 0.5))
	assert.Equal(t, float32(0.25), Unlerp(10, 20, 12.5))
	assert.Equal(t, float32(9), Square(-3))
	assert.Equal(t, float32(-1), Sign(-0.2))
	assert.Equal(t, float32(0), Sign(0))
	assert.Equal(t, float32(1), Sign(4))
	assert.True(t, IsNaN(math32.NaN()))
	assert.False(t, IsFinite(math32.Inf(1)))
	assert.False(t, IsFinite(math32.NaN()))
	assert.True(t, IsFinite(1e30))
}

func TestColorByteConversion(t *testing.T) {
	assert.Equal(t, uint8(102), ColorFloatToByte(0.4))
	assert.Equal(t, uint8(255), ColorFloatToByte(1.5))
	assert.Equal(t, uint8(0), ColorFloatToByte(-1))
	assert.Equal(t, uint8(0), ColorFloatToByte(math32.NaN()))
	assert.Equal(t, uint8(128), ColorFloatToByte(0.5))
	assert.InDelta(t, 0.501960784, ColorByteToFloat(128), 1e-6)
	assert.Equal(t, float32(1), ColorByteToFloat(255))

	for b := 0; b < 256; b++ {
		assert.Equal(t, uint8(b), ColorFloatToByte(ColorByteToFloat(uint8(b))))
	}
}
