package math

import (
	"image/color"

	"github.com/chewxy/math32"
)

// ------------------------------------------
// Color
// ------------------------------------------

var _ color.Color = Color{}

/**
 * @brief Converts a gamma-space (sRGB) value to linear space.
 */
func GammaToLinear(gamma float32) float32 {
	if gamma <= 0.04045 {
		return gamma / 12.92
	}
	return math32.Pow((gamma+0.055)/1.055, 2.4)
}

/**
 * @brief Converts a linear-space value to gamma space (sRGB).
 */
func LinearToGamma(linear float32) float32 {
	if linear <= 0.0031308 {
		return linear * 12.92
	}
	return 1.055*math32.Pow(linear, 1.0/2.4) - 0.055
}

/**
 * @brief Creates a color from linear-space components.
 */
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

/**
 * @brief Creates an opaque black color (0, 0, 0, 1). This is the default
 * color; the zero value of Color is transparent black.
 */
func NewColorBlack() Color {
	return Color{0, 0, 0, 1}
}

// NewColorWhite creates an opaque white color.
func NewColorWhite() Color {
	return Color{1, 1, 1, 1}
}

/**
 * @brief Creates a color from gamma-space bytes, as found in image files
 * and color pickers.
 */
func NewColorGammaByte(r, g, b, a uint8) Color {
	c := Color{}
	c.SetGammaByteRGBA(r, g, b, a)
	return c
}

// NewColorFromStd converts any image/color value, interpreted as sRGB.
func NewColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColorGammaByte(n.R, n.G, n.B, n.A)
}

// NewColorHSV creates an opaque color from hue (degrees), saturation and
// value given in gamma space.
func NewColorHSV(hue, saturation, value float32) Color {
	c := NewColorBlack()
	c.SetHSV(hue, saturation, value)
	return c
}

// SetRGB sets the color channels and leaves alpha untouched.
func (c *Color) SetRGB(r, g, b float32) {
	c.R, c.G, c.B = r, g, b
}

func (c *Color) SetRGBA(r, g, b, a float32) {
	c.R, c.G, c.B, c.A = r, g, b, a
}

/**
 * @brief Sets the color channels from gamma-space bytes. Alpha is untouched.
 */
func (c *Color) SetGammaByteRGB(r, g, b uint8) {
	c.R = GammaToLinear(ColorByteToFloat(r))
	c.G = GammaToLinear(ColorByteToFloat(g))
	c.B = GammaToLinear(ColorByteToFloat(b))
}

/**
 * @brief Sets all channels from gamma-space bytes. Alpha is linear and only
 * rescaled to [0, 1].
 */
func (c *Color) SetGammaByteRGBA(r, g, b, a uint8) {
	c.SetGammaByteRGB(r, g, b)
	c.A = ColorByteToFloat(a)
}

/**
 * @brief Returns the color as gamma-space bytes. Channels outside [0, 1]
 * are saturated.
 */
func (c Color) GetAsGammaByteRGBA() color.NRGBA {
	return color.NRGBA{
		R: ColorFloatToByte(LinearToGamma(c.R)),
		G: ColorFloatToByte(LinearToGamma(c.G)),
		B: ColorFloatToByte(LinearToGamma(c.B)),
		A: ColorFloatToByte(c.A),
	}
}

// RGBA implements color.Color with gamma-encoded, alpha-premultiplied values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.GetAsGammaByteRGBA().RGBA()
}

/**
 * @brief Returns the factor by which the brightest channel exceeds 1, or 1
 * for colors within the displayable range.
 */
func (c Color) ComputeHdrMultiplier() float32 {
	return Max(1.0, Max(c.R, Max(c.G, c.B)))
}

// ComputeHdrExposureValue returns log2 of ComputeHdrMultiplier.
func (c Color) ComputeHdrExposureValue() float32 {
	return math32.Log2(c.ComputeHdrMultiplier())
}

// ApplyHdrExposureValue scales the color channels by 2^ev. Alpha is untouched.
func (c *Color) ApplyHdrExposureValue(ev float32) {
	c.ScaleRGB(math32.Pow(2.0, ev))
}

// GetLuminance returns the Rec.709 luminance of the linear color.
func (c Color) GetLuminance() float32 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

/**
 * @brief Returns hue in degrees [0, 360), saturation and value, computed in
 * gamma space.
 */
func (c Color) GetHSV() (hue, saturation, value float32) {
	r := LinearToGamma(c.R)
	g := LinearToGamma(c.G)
	b := LinearToGamma(c.B)

	value = Max(r, Max(g, b))
	if value < SmallEpsilon {
		return 0, 0, 0
	}
	minimum := Min(r, Min(g, b))
	delta := value - minimum
	if delta <= 0 {
		return 0, 0, value
	}
	saturation = delta / value

	switch value {
	case r:
		hue = 60.0 * (g - b) / delta
		if hue < 0 {
			hue += 360.0
		}
	case g:
		hue = 120.0 + 60.0*(b-r)/delta
	default:
		hue = 240.0 + 60.0*(r-g)/delta
	}
	return hue, saturation, value
}

/**
 * @brief Sets the color channels from hue (degrees), saturation and value
 * given in gamma space. Alpha is untouched.
 */
func (c *Color) SetHSV(hue, saturation, value float32) {
	hue = math32.Mod(hue, 360.0)
	if hue < 0 {
		hue += 360.0
	}

	chroma := value * saturation
	hp := hue / 60.0
	x := chroma * (1.0 - math32.Abs(math32.Mod(hp, 2.0)-1.0))
	m := value - chroma

	var r, g, b float32
	switch {
	case hp < 1:
		r, g, b = chroma, x, 0
	case hp < 2:
		r, g, b = x, chroma, 0
	case hp < 3:
		r, g, b = 0, chroma, x
	case hp < 4:
		r, g, b = 0, x, chroma
	case hp < 5:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	c.R = GammaToLinear(r + m)
	c.G = GammaToLinear(g + m)
	c.B = GammaToLinear(b + m)
}

// GetInvertedColor returns 1 - c for every channel, alpha included. c is
// expected to be normalized.
func (c Color) GetInvertedColor() Color {
	return Color{1.0 - c.R, 1.0 - c.G, 1.0 - c.B, 1.0 - c.A}
}

// GetComplementaryColor returns the color with the hue rotated by 180
// degrees, keeping saturation, value and alpha.
func (c Color) GetComplementaryColor() Color {
	h, s, v := c.GetHSV()
	out := c
	out.SetHSV(h+180.0, s, v)
	return out
}

// IsNormalized reports whether every channel lies within [0, 1].
func (c Color) IsNormalized() bool {
	return c.R >= 0 && c.R <= 1 &&
		c.G >= 0 && c.G <= 1 &&
		c.B >= 0 && c.B <= 1 &&
		c.A >= 0 && c.A <= 1
}

func (c Color) IsNaN() bool {
	return math32.IsNaN(c.R) || math32.IsNaN(c.G) || math32.IsNaN(c.B) || math32.IsNaN(c.A)
}

func (c Color) IsValid() bool {
	return IsFinite(c.R) && IsFinite(c.G) && IsFinite(c.B) && IsFinite(c.A)
}

// IsEqualRGB compares the color channels within epsilon, ignoring alpha.
func (c Color) IsEqualRGB(other Color, epsilon float32) bool {
	return IsNumberEqual(c.R, other.R, epsilon) &&
		IsNumberEqual(c.G, other.G, epsilon) &&
		IsNumberEqual(c.B, other.B, epsilon)
}

// IsEqualRGBA compares all channels within epsilon.
func (c Color) IsEqualRGBA(other Color, epsilon float32) bool {
	return c.IsEqualRGB(other, epsilon) && IsNumberEqual(c.A, other.A, epsilon)
}

func (c Color) IsIdentical(other Color) bool {
	return c == other
}

// ScaleRGB multiplies the color channels by factor. Alpha is untouched.
func (c *Color) ScaleRGB(factor float32) {
	c.R *= factor
	c.G *= factor
	c.B *= factor
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(alpha float32) Color {
	c.A = alpha
	return c
}

// Lerp interpolates all channels linearly.
func (c Color) Lerp(other Color, factor float32) Color {
	return Color{
		Lerp(c.R, other.R, factor),
		Lerp(c.G, other.G, factor),
		Lerp(c.B, other.B, factor),
		Lerp(c.A, other.A, factor),
	}
}

func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B, c.A - other.A}
}

// Mul returns the channel-wise product.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// MulScalar multiplies all channels, alpha included.
func (c Color) MulScalar(f float32) Color {
	return Color{c.R * f, c.G * f, c.B * f, c.A * f}
}

// DivScalar divides all channels, alpha included.
func (c Color) DivScalar(f float32) Color {
	return c.MulScalar(1.0 / f)
}
