package math

import (
	"github.com/chewxy/math32"
)

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0f.
 */
func NewVec2Zero() Vec2 {
	return Vec2{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0f.
 */
func NewVec2One() Vec2 {
	return Vec2{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up() Vec2 {
	return Vec2{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down() Vec2 {
	return Vec2{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left() Vec2 {
	return Vec2{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right() Vec2 {
	return Vec2{1.0, 0.0}
}

// Set overwrites both components.
func (v *Vec2) Set(x, y float32) {
	v.X, v.Y = x, y
}

// SetAll sets both components to f.
func (v *Vec2) SetAll(f float32) {
	v.X, v.Y = f, f
}

// SetZero sets both components to zero.
func (v *Vec2) SetZero() {
	v.X, v.Y = 0, 0
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Mul(other Vec2) Vec2 {
	return v.CompMul(other)
}

/**
 * Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec2) Div(other Vec2) Vec2 {
	return v.CompDiv(other)
}

// MulScalar returns v scaled by s.
func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// DivScalar returns v divided by s.
func (v Vec2) DivScalar(s float32) Vec2 {
	inv := 1.0 / s
	return Vec2{v.X * inv, v.Y * inv}
}

// SetAdd stores lhs + rhs in v.
func (v *Vec2) SetAdd(lhs, rhs Vec2) {
	*v = lhs.Add(rhs)
}

// SetSub stores lhs - rhs in v.
func (v *Vec2) SetSub(lhs, rhs Vec2) {
	*v = lhs.Sub(rhs)
}

// SetMul stores lhs * s in v.
func (v *Vec2) SetMul(lhs Vec2, s float32) {
	*v = lhs.MulScalar(s)
}

// SetDiv stores lhs / s in v.
func (v *Vec2) SetDiv(lhs Vec2, s float32) {
	*v = lhs.DivScalar(s)
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 *
 * @return The length.
 */
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the provided vector in place to a unit vector.
 * A zero vector produces NaN components, use NormalizeIfNotZero when the
 * input may be degenerate.
 */
func (v *Vec2) Normalize() {
	length := v.Length()
	v.X /= length
	v.Y /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 */
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// GetLengthAndNormalize normalizes v and returns its previous length.
func (v *Vec2) GetLengthAndNormalize() float32 {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return length
}

/**
 * @brief Normalizes the vector unless its length is within epsilon of zero,
 * in which case the vector is replaced by fallback.
 *
 * @return true if the vector was normalized, false if fallback was used.
 */
func (v *Vec2) NormalizeIfNotZero(fallback Vec2, epsilon float32) bool {
	length := v.Length()
	if !IsFinite(length) || IsNumberZero(length, epsilon) {
		*v = fallback
		return false
	}
	v.X /= length
	v.Y /= length
	return true
}

// SetLength rescales v to the given length. When v is (nearly) zero it is
// set to zero and false is returned.
func (v *Vec2) SetLength(length, epsilon float32) bool {
	if !v.NormalizeIfNotZero(NewVec2Zero(), epsilon) {
		return false
	}
	v.X *= length
	v.Y *= length
	return true
}

// IsZero reports whether every component is within epsilon of zero.
func (v Vec2) IsZero(epsilon float32) bool {
	return IsNumberZero(v.X, epsilon) && IsNumberZero(v.Y, epsilon)
}

// IsNormalized reports whether the squared length is within epsilon of one.
func (v Vec2) IsNormalized(epsilon float32) bool {
	return IsNumberEqual(v.LengthSquared(), 1.0, epsilon)
}

// IsNaN reports whether any component is NaN.
func (v Vec2) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}

// IsValid reports whether every component is finite.
func (v Vec2) IsValid() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// IsIdentical compares v and other for exact equality.
func (v Vec2) IsIdentical(other Vec2) bool {
	return v.X == other.X && v.Y == other.Y
}

/**
 * @brief Compares all elements of v and other and ensures the difference is
 * within epsilon.
 */
func (v Vec2) IsEqual(other Vec2, epsilon float32) bool {
	return IsNumberEqual(v.X, other.X, epsilon) && IsNumberEqual(v.Y, other.Y, epsilon)
}

// Negate flips the sign of every component in place.
func (v *Vec2) Negate() {
	v.X, v.Y = -v.X, -v.Y
}

// Negated returns -v.
func (v Vec2) Negated() Vec2 {
	return Vec2{-v.X, -v.Y}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float32 {
	return v.X*other.X + v.Y*other.Y
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between v and other.
func (v Vec2) DistanceSquared(other Vec2) float32 {
	return v.Sub(other).LengthSquared()
}

// AngleBetween returns the angle in radians between two normalized vectors.
func (v Vec2) AngleBetween(other Vec2) float32 {
	return math32.Acos(Clamp(v.Dot(other), -1, 1))
}

// CompMin returns the component-wise minimum.
func (v Vec2) CompMin(other Vec2) Vec2 {
	return Vec2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// CompMax returns the component-wise maximum.
func (v Vec2) CompMax(other Vec2) Vec2 {
	return Vec2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// CompClamp clamps every component into [low, high].
func (v Vec2) CompClamp(low, high Vec2) Vec2 {
	return Vec2{Clamp(v.X, low.X, high.X), Clamp(v.Y, low.Y, high.Y)}
}

// CompMul returns the component-wise product.
func (v Vec2) CompMul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

// CompDiv returns the component-wise quotient.
func (v Vec2) CompDiv(other Vec2) Vec2 {
	return Vec2{v.X / other.X, v.Y / other.Y}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{math32.Abs(v.X), math32.Abs(v.Y)}
}

/**
 * @brief Reflects v on a plane with the given normal.
 *
 * @param normal The normalized plane normal.
 * @return The reflected vector.
 */
func (v Vec2) GetReflectedVector(normal Vec2) Vec2 {
	return v.Sub(normal.MulScalar(2.0 * v.Dot(normal)))
}

// Lerp interpolates from v to other by factor.
func (v Vec2) Lerp(other Vec2, factor float32) Vec2 {
	return Vec2{Lerp(v.X, other.X, factor), Lerp(v.Y, other.Y, factor)}
}

// GetOrthogonalVector returns v rotated by 90 degrees counter-clockwise.
func (v Vec2) GetOrthogonalVector() Vec2 {
	return Vec2{-v.Y, v.X}
}

// MakeOrthogonalTo removes the part of v that is parallel to the normalized
// vector normal.
func (v *Vec2) MakeOrthogonalTo(normal Vec2) {
	*v = v.Sub(normal.MulScalar(v.Dot(normal)))
}

// ToVec3 extends v with the given z component.
func (v Vec2) ToVec3(z float32) Vec3 {
	return Vec3{v.X, v.Y, z}
}
