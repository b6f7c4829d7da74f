package math

import (
	"errors"
	"image/color"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaConversion(t *testing.T) {
	assert.Equal(t, float32(0), GammaToLinear(0))
	assert.InDelta(t, 1, GammaToLinear(1), 1e-6)
	assert.InDelta(t, 0.04045/12.92, GammaToLinear(0.04045), 1e-7)
	assert.InDelta(t, 0.214041, GammaToLinear(0.5), 1e-5)
	assert.InDelta(t, 0.5, LinearToGamma(0.214041), 1e-5)
	assert.InDelta(t, 0.0031308*12.92, LinearToGamma(0.0031308), 1e-7)

	for i := 0; i <= 100; i++ {
		x := float32(i) / 100
		assert.InDelta(t, x, GammaToLinear(LinearToGamma(x)), 1e-5)
		assert.InDelta(t, x, LinearToGamma(GammaToLinear(x)), 1e-5)
	}
}

func TestColorDefaults(t *testing.T) {
	assert.Equal(t, Color{0, 0, 0, 1}, NewColorBlack())
	assert.Equal(t, Color{1, 1, 1, 1}, NewColorWhite())
	assert.Equal(t, Color{0.1, 0.2, 0.3, 0.4}, NewColor(0.1, 0.2, 0.3, 0.4))
}

func TestColorGammaByteRoundTrip(t *testing.T) {
	c := NewColorBlack()
	c.SetGammaByteRGBA(50, 100, 150, 200)
	assert.Equal(t, color.NRGBA{50, 100, 150, 200}, c.GetAsGammaByteRGBA())
	assert.InDelta(t, 200.0/255.0, c.A, 1e-6)

	// every byte value survives the trip through linear space
	for b := 0; b < 256; b++ {
		v := uint8(b)
		got := NewColorGammaByte(v, v, v, v).GetAsGammaByteRGBA()
		require.Equal(t, color.NRGBA{v, v, v, v}, got)
	}

	rgb := NewColor(0, 0, 0, 0.25)
	rgb.SetGammaByteRGB(255, 0, 128)
	assert.Equal(t, float32(0.25), rgb.A)
	assert.InDelta(t, 1, rgb.R, 1e-6)
	assert.InDelta(t, GammaToLinear(128.0/255.0), rgb.B, 1e-6)
}

func TestColorGammaBytesSaturate(t *testing.T) {
	c := NewColor(4, -1, math32.NaN(), 2)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, c.GetAsGammaByteRGBA())
}

func TestColorStdInterop(t *testing.T) {
	c := NewColorFromStd(color.NRGBA{R: 255, G: 128, B: 0, A: 255})
	assert.InDelta(t, 1, c.R, 1e-6)
	assert.InDelta(t, GammaToLinear(128.0/255.0), c.G, 1e-6)

	r, g, b, a := c.RGBA()
	er, eg, eb, ea := color.NRGBA{R: 255, G: 128, B: 0, A: 255}.RGBA()
	assert.Equal(t, [4]uint32{er, eg, eb, ea}, [4]uint32{r, g, b, a})

	gray := NewColorFromStd(color.Gray{Y: 50})
	assert.Equal(t, color.NRGBA{50, 50, 50, 255}, gray.GetAsGammaByteRGBA())
}

func TestColorHdr(t *testing.T) {
	c := NewColor(0.5, 0.2, 0.1, 1)
	assert.Equal(t, float32(1), c.ComputeHdrMultiplier())
	assert.Equal(t, float32(0), c.ComputeHdrExposureValue())

	hdr := NewColor(4, 2, 1, 1)
	assert.Equal(t, float32(4), hdr.ComputeHdrMultiplier())
	assert.InDelta(t, 2, hdr.ComputeHdrExposureValue(), 1e-6)

	hdr.ApplyHdrExposureValue(-hdr.ComputeHdrExposureValue())
	assert.True(t, hdr.IsEqualRGBA(NewColor(1, 0.5, 0.25, 1), 1e-5), "%+v", hdr)

	hdr.ApplyHdrExposureValue(1)
	assert.True(t, hdr.IsEqualRGBA(NewColor(2, 1, 0.5, 1), 1e-5), "%+v", hdr)
}

func TestColorLuminance(t *testing.T) {
	assert.InDelta(t, 1, NewColorWhite().GetLuminance(), 1e-6)
	assert.Equal(t, float32(0), NewColorBlack().GetLuminance())
	assert.InDelta(t, 0.7152, NewColor(0, 1, 0, 1).GetLuminance(), 1e-6)
	assert.InDelta(t, 0.2126*0.5+0.0722*0.25, NewColor(0.5, 0, 0.25, 1).GetLuminance(), 1e-6)
}

func TestColorHSV(t *testing.T) {
	tests := []struct {
		name    string
		bytes   color.NRGBA
		h, s, v float32
	}{
		{"red", color.NRGBA{255, 0, 0, 255}, 0, 1, 1},
		{"green", color.NRGBA{0, 255, 0, 255}, 120, 1, 1},
		{"blue", color.NRGBA{0, 0, 255, 255}, 240, 1, 1},
		{"yellow", color.NRGBA{255, 255, 0, 255}, 60, 1, 1},
		{"magenta", color.NRGBA{255, 0, 255, 255}, 300, 1, 1},
		{"gray", color.NRGBA{128, 128, 128, 255}, 0, 0, 128.0 / 255.0},
		{"black", color.NRGBA{0, 0, 0, 255}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewColorFromStd(tt.bytes)
			h, s, v := c.GetHSV()
			assert.InDelta(t, tt.h, h, 0.01)
			assert.InDelta(t, tt.s, s, 1e-4)
			assert.InDelta(t, tt.v, v, 1e-4)

			back := NewColorHSV(tt.h, tt.s, tt.v)
			assert.Equal(t, tt.bytes, back.GetAsGammaByteRGBA())
		})
	}
}

func TestColorComplementaryAndInverted(t *testing.T) {
	red := NewColorFromStd(color.NRGBA{255, 0, 0, 128})
	comp := red.GetComplementaryColor()
	assert.Equal(t, color.NRGBA{0, 255, 255, 128}, comp.GetAsGammaByteRGBA())

	inv := NewColor(0.25, 0.5, 1, 1).GetInvertedColor()
	assert.Equal(t, NewColor(0.75, 0.5, 0, 0), inv)
}

func TestColorArithmetic(t *testing.T) {
	a := NewColor(0.1, 0.2, 0.3, 0.4)
	b := NewColor(0.5, 0.5, 0.5, 0.5)

	assert.True(t, a.Add(b).IsEqualRGBA(NewColor(0.6, 0.7, 0.8, 0.9), 1e-6))
	assert.True(t, b.Sub(a).IsEqualRGBA(NewColor(0.4, 0.3, 0.2, 0.1), 1e-6))
	assert.True(t, a.Mul(b).IsEqualRGBA(NewColor(0.05, 0.1, 0.15, 0.2), 1e-6))
	assert.True(t, a.MulScalar(2).IsEqualRGBA(NewColor(0.2, 0.4, 0.6, 0.8), 1e-6))
	assert.True(t, a.DivScalar(2).IsEqualRGBA(NewColor(0.05, 0.1, 0.15, 0.2), 1e-6))
	assert.True(t, a.Lerp(b, 0.5).IsEqualRGBA(NewColor(0.3, 0.35, 0.4, 0.45), 1e-6))

	s := a
	s.ScaleRGB(10)
	assert.True(t, s.IsEqualRGBA(NewColor(1, 2, 3, 0.4), 1e-5))

	assert.Equal(t, float32(0.9), a.WithAlpha(0.9).A)
	assert.True(t, a.IsEqualRGB(a.WithAlpha(0.9), 0))
	assert.False(t, a.IsEqualRGBA(a.WithAlpha(0.9), 0.1))

	var c Color
	c.SetRGBA(1, 2, 3, 4)
	c.SetRGB(5, 6, 7)
	assert.True(t, c.IsIdentical(NewColor(5, 6, 7, 4)))
}

func TestColorPredicates(t *testing.T) {
	assert.True(t, NewColor(0, 0.5, 1, 1).IsNormalized())
	assert.False(t, NewColor(0, 1.5, 1, 1).IsNormalized())
	assert.False(t, NewColor(-0.1, 0, 0, 1).IsNormalized())
	assert.True(t, NewColor(math32.NaN(), 0, 0, 1).IsNaN())
	assert.False(t, NewColor(math32.Inf(1), 0, 0, 1).IsValid())
	assert.True(t, NewColor(100, 0, 0, 1).IsValid())
}

func TestNamedColors(t *testing.T) {
	red, err := NamedColor("Red")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, red.GetAsGammaByteRGBA())
	assert.InDelta(t, 1, red.R, 1e-6)

	cornflower := MustNamedColor("cornflowerblue")
	assert.Equal(t, color.NRGBA{100, 149, 237, 255}, cornflower.GetAsGammaByteRGBA())

	_, err = NamedColor("notacolor")
	assert.True(t, errors.Is(err, ErrUnknownColor))
	assert.Panics(t, func() { MustNamedColor("notacolor") })

	names := ColorNames()
	assert.Contains(t, names, "aliceblue")
	assert.IsIncreasing(t, names)
	for _, name := range names {
		_, err := NamedColor(name)
		require.NoError(t, err, name)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected color.NRGBA
	}{
		{"#ff0000", color.NRGBA{255, 0, 0, 255}},
		{"#0f0", color.NRGBA{0, 255, 0, 255}},
		{"#32649680", color.NRGBA{50, 100, 150, 128}},
		{" navy ", color.NRGBA{0, 0, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.GetAsGammaByteRGBA())
		})
	}

	for _, bad := range []string{"#12", "#zzzzzz", "#1234567", "bluish"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrUnknownColor, bad)
	}
}
