package math

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Saturate clamps f to [0, 1].
func Saturate(f float32) float32 {
	return Clamp(f, 0, 1)
}

// IsNumberEqual reports whether a lies within the closed interval [b-epsilon, b+epsilon].
func IsNumberEqual(a, b, epsilon float32) bool {
	return a >= b-epsilon && a <= b+epsilon
}

// IsNumberZero reports whether a lies within the closed interval [-epsilon, epsilon].
func IsNumberZero(a, epsilon float32) bool {
	return a >= -epsilon && a <= epsilon
}

// IsNaN reports whether f is not a number.
func IsNaN(f float32) bool {
	return math32.IsNaN(f)
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegreeToRadian(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadianToDegree(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// AngleBetween returns the unsigned shortest angular distance between two
// angles given in radians within [0, 2*PI). The result is in [0, PI].
func AngleBetween(a, b float32) float32 {
	return K_PI - math32.Abs(math32.Abs(a-b)-K_PI)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, factor float32) float32 {
	return a + (b-a)*factor
}

// Unlerp returns the factor that Lerp(a, b, factor) needs to yield value.
func Unlerp(a, b, value float32) float32 {
	return (value - a) / (b - a)
}

// Square returns f*f.
func Square(f float32) float32 {
	return f * f
}

// Sign returns -1, 0 or 1 depending on the sign of f.
func Sign(f float32) float32 {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

// ColorFloatToByte maps [0, 1] to [0, 255] rounding half up. Values outside
// the range saturate, NaN maps to 0.
func ColorFloatToByte(value float32) uint8 {
	if math32.IsNaN(value) {
		return 0
	}
	return uint8(math32.Floor(Saturate(value)*255.0 + 0.5))
}

// ColorByteToFloat maps [0, 255] to [0, 1].
func ColorByteToFloat(value uint8) float32 {
	return float32(value) * (1.0 / 255.0)
}
