package math

import (
	"github.com/chewxy/math32"
)

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{
		X: x,
		Y: y,
		Z: z,
	}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0f.
 */
func NewVec3One() Vec3 {
	return Vec3{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down() Vec3 {
	return Vec3{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left() Vec3 {
	return Vec3{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right() Vec3 {
	return Vec3{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward() Vec3 {
	return Vec3{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back() Vec3 {
	return Vec3{0.0, 0.0, 1.0}
}

// Set overwrites all components.
func (v *Vec3) Set(x, y, z float32) {
	v.X, v.Y, v.Z = x, y, z
}

// SetAll sets all components to f.
func (v *Vec3) SetAll(f float32) {
	v.X, v.Y, v.Z = f, f, f
}

// SetZero sets all components to zero.
func (v *Vec3) SetZero() {
	v.X, v.Y, v.Z = 0, 0, 0
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return v.CompMul(other)
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return v.CompDiv(other)
}

/**
 * @brief Multiplies all elements of v by s and returns a copy of the result.
 */
func (v Vec3) MulScalar(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar returns v divided by s.
func (v Vec3) DivScalar(s float32) Vec3 {
	inv := 1.0 / s
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// SetAdd stores lhs + rhs in v.
func (v *Vec3) SetAdd(lhs, rhs Vec3) {
	*v = lhs.Add(rhs)
}

// SetSub stores lhs - rhs in v.
func (v *Vec3) SetSub(lhs, rhs Vec3) {
	*v = lhs.Sub(rhs)
}

// SetMul stores lhs * s in v.
func (v *Vec3) SetMul(lhs Vec3, s float32) {
	*v = lhs.MulScalar(s)
}

// SetDiv stores lhs / s in v.
func (v *Vec3) SetDiv(lhs Vec3, s float32) {
	*v = lhs.DivScalar(s)
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSquared())
}

/**
 * @brief Normalizes the provided vector in place to a unit vector.
 * A zero vector produces NaN components, use NormalizeIfNotZero when the
 * input may be degenerate.
 */
func (v *Vec3) Normalize() {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
}

/**
 * @brief Returns a normalized copy of the supplied vector.
 */
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// GetLengthAndNormalize normalizes v and returns its previous length.
func (v *Vec3) GetLengthAndNormalize() float32 {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
	return length
}

/**
 * @brief Normalizes the vector unless its length is within epsilon of zero,
 * in which case the vector is replaced by fallback.
 *
 * @return true if the vector was normalized, false if fallback was used.
 */
func (v *Vec3) NormalizeIfNotZero(fallback Vec3, epsilon float32) bool {
	length := v.Length()
	if !IsFinite(length) || IsNumberZero(length, epsilon) {
		*v = fallback
		return false
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
	return true
}

// SetLength rescales v to the given length. When v is (nearly) zero it is
// set to zero and false is returned.
func (v *Vec3) SetLength(length, epsilon float32) bool {
	if !v.NormalizeIfNotZero(NewVec3Zero(), epsilon) {
		return false
	}
	v.X *= length
	v.Y *= length
	v.Z *= length
	return true
}

// IsZero reports whether every component is within epsilon of zero.
func (v Vec3) IsZero(epsilon float32) bool {
	return IsNumberZero(v.X, epsilon) && IsNumberZero(v.Y, epsilon) && IsNumberZero(v.Z, epsilon)
}

// IsNormalized reports whether the squared length is within epsilon of one.
func (v Vec3) IsNormalized(epsilon float32) bool {
	return IsNumberEqual(v.LengthSquared(), 1.0, epsilon)
}

// IsNaN reports whether any component is NaN.
func (v Vec3) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y) || math32.IsNaN(v.Z)
}

// IsValid reports whether every component is finite.
func (v Vec3) IsValid() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// IsIdentical compares v and other for exact equality.
func (v Vec3) IsIdentical(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is within epsilon.
 *
 * @param other The vector to compare with.
 * @param epsilon The allowed difference per component. Typically DefaultEpsilon.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) IsEqual(other Vec3, epsilon float32) bool {
	return IsNumberEqual(v.X, other.X, epsilon) &&
		IsNumberEqual(v.Y, other.Y, epsilon) &&
		IsNumberEqual(v.Z, other.Z, epsilon)
}

// Negate flips the sign of every component in place.
func (v *Vec3) Negate() {
	v.X, v.Y, v.Z = -v.X, -v.Y, -v.Z
}

// Negated returns -v.
func (v Vec3) Negated() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the dot product between v and other. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the right-handed cross product of v and other.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance between v and other.
func (v Vec3) DistanceSquared(other Vec3) float32 {
	return v.Sub(other).LengthSquared()
}

// AngleBetween returns the angle in radians between two normalized vectors.
func (v Vec3) AngleBetween(other Vec3) float32 {
	return math32.Acos(Clamp(v.Dot(other), -1, 1))
}

// CompMin returns the component-wise minimum.
func (v Vec3) CompMin(other Vec3) Vec3 {
	return Vec3{Min(v.X, other.X), Min(v.Y, other.Y), Min(v.Z, other.Z)}
}

// CompMax returns the component-wise maximum.
func (v Vec3) CompMax(other Vec3) Vec3 {
	return Vec3{Max(v.X, other.X), Max(v.Y, other.Y), Max(v.Z, other.Z)}
}

// CompClamp clamps every component into [low, high].
func (v Vec3) CompClamp(low, high Vec3) Vec3 {
	return Vec3{
		Clamp(v.X, low.X, high.X),
		Clamp(v.Y, low.Y, high.Y),
		Clamp(v.Z, low.Z, high.Z),
	}
}

// CompMul returns the component-wise product.
func (v Vec3) CompMul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// CompDiv returns the component-wise quotient.
func (v Vec3) CompDiv(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{math32.Abs(v.X), math32.Abs(v.Y), math32.Abs(v.Z)}
}

/**
 * @brief Reflects v on a plane with the given normal.
 *
 * @param normal The normalized plane normal.
 * @return v - 2*(v.normal)*normal.
 */
func (v Vec3) GetReflectedVector(normal Vec3) Vec3 {
	return v.Sub(normal.MulScalar(2.0 * v.Dot(normal)))
}

// Lerp interpolates from v to other by factor.
func (v Vec3) Lerp(other Vec3, factor float32) Vec3 {
	return Vec3{
		Lerp(v.X, other.X, factor),
		Lerp(v.Y, other.Y, factor),
		Lerp(v.Z, other.Z, factor),
	}
}

// GetOrthogonalVector returns some vector orthogonal to v. The result is not
// normalized.
func (v Vec3) GetOrthogonalVector() Vec3 {
	if math32.Abs(v.Y) < 0.999 {
		return v.Cross(NewVec3Up())
	}
	return v.Cross(NewVec3Right())
}

// MakeOrthogonalTo removes the part of v that is parallel to the normalized
// vector normal.
func (v *Vec3) MakeOrthogonalTo(normal Vec3) {
	ortho := normal.Cross(*v)
	*v = ortho.Cross(normal)
}

/**
 * @brief Sets v to the normal of the triangle (v1, v2, v3) in clockwise
 * winding order.
 *
 * @return false if the triangle is degenerate. v is then (1, 0, 0).
 */
func (v *Vec3) CalculateNormal(v1, v2, v3 Vec3) bool {
	*v = v3.Sub(v2).Cross(v1.Sub(v2))
	return v.NormalizeIfNotZero(NewVec3Right(), SmallEpsilon)
}

// ToVec2 drops the z component.
func (v Vec3) ToVec2() Vec2 {
	return Vec2{v.X, v.Y}
}

/**
 * @brief Transforms v as a position by m, including translation.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	return m.TransformPosition(v)
}
