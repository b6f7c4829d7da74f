package math

import (
	"github.com/chewxy/math32"
)

// ------------------------------------------
// Quaternion
// ------------------------------------------

// Angle in radians between the operands below which SetSlerp falls back to
// a normalized lerp.
const slerpDelta float32 = 0.009

var slerpCosThreshold = math32.Cos(slerpDelta)

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1.0}
}

// NewQuat creates a quaternion from raw components. The result is only a
// rotation if it has unit length.
func NewQuat(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The normalized axis of rotation.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float32) Quaternion {
	q := Quaternion{}
	q.SetFromAxisAndAngle(axis, angle)
	return q
}

// NewQuatFromEulerAngles creates a rotation from roll (x), pitch (y) and
// yaw (z) in radians.
func NewQuatFromEulerAngles(x, y, z float32) Quaternion {
	q := Quaternion{}
	q.SetFromEulerAngles(x, y, z)
	return q
}

// NewQuatShortestRotation creates the smallest rotation that turns from into to.
func NewQuatShortestRotation(from, to Vec3) Quaternion {
	q := Quaternion{}
	q.SetShortestRotation(from, to)
	return q
}

// NewQuatSlerp interpolates spherically between from and to.
func NewQuatSlerp(from, to Quaternion, t float32) Quaternion {
	q := Quaternion{}
	q.SetSlerp(from, to, t)
	return q
}

// NewQuatFromMat3 extracts the rotation of a pure rotation matrix.
func NewQuatFromMat3(m Mat3) Quaternion {
	q := Quaternion{}
	q.SetFromMat3(m)
	return q
}

// SetIdentity resets q to the identity rotation.
func (q *Quaternion) SetIdentity() {
	*q = NewQuatIdentity()
}

/**
 * @brief Returns the length of the provided quaternion.
 */
func (q Quaternion) Normal() float32 {
	return math32.Sqrt(q.Dot(q))
}

/**
 * @brief Normalizes the quaternion in place.
 */
func (q *Quaternion) Normalize() {
	normal := q.Normal()
	q.X /= normal
	q.Y /= normal
	q.Z /= normal
	q.W /= normal
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalized() Quaternion {
	q.Normalize()
	return q
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the inverse rotation. For a unit quaternion this is the
 * conjugate.
 */
func (q Quaternion) Inverse() Quaternion {
	return q.Conjugate()
}

// Invert replaces q by its inverse rotation.
func (q *Quaternion) Invert() {
	*q = q.Conjugate()
}

// Negated returns -q, which describes the same rotation.
func (q Quaternion) Negated() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, -q.W}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float32 {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). The result
 * rotates by other first and then by q.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W +
		q.Y*other.Z -
		q.Z*other.Y +
		q.W*other.X

	out_quaternion.Y = -q.X*other.Z +
		q.Y*other.W +
		q.Z*other.X +
		q.W*other.Y

	out_quaternion.Z = q.X*other.Y -
		q.Y*other.X +
		q.Z*other.W +
		q.W*other.Z

	out_quaternion.W = -q.X*other.X -
		q.Y*other.Y -
		q.Z*other.Z +
		q.W*other.W

	return out_quaternion
}

// ConcatenateRotations sets q = q * rhs.
func (q *Quaternion) ConcatenateRotations(rhs Quaternion) {
	*q = q.Mul(rhs)
}

// SetConcatenatedRotations sets q = a * b.
func (q *Quaternion) SetConcatenatedRotations(a, b Quaternion) {
	*q = a.Mul(b)
}

/**
 * @brief Rotates v by q. q must be normalized.
 */
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).MulScalar(2.0)
	return v.Add(t.MulScalar(q.W)).Add(qv.Cross(t))
}

/**
 * @brief Sets q to a rotation of angle radians around axis.
 *
 * @param axis The axis of rotation, must be normalized.
 * @param angle The angle in radians.
 */
func (q *Quaternion) SetFromAxisAndAngle(axis Vec3, angle float32) {
	half_angle := 0.5 * angle
	s := math32.Sin(half_angle)
	c := math32.Cos(half_angle)
	*q = Quaternion{s * axis.X, s * axis.Y, s * axis.Z, c}
}

/**
 * @brief Returns the rotation axis and the angle in radians. When the
 * rotation is (nearly) the identity the axis is (1, 0, 0).
 */
func (q Quaternion) GetRotationAxisAndAngle(epsilon float32) (Vec3, float32) {
	acos := math32.Acos(Clamp(q.W, -1, 1))
	d := math32.Sin(acos)

	axis := NewVec3Right()
	if d >= epsilon {
		axis = Vec3{q.X / d, q.Y / d, q.Z / d}
	}
	return axis, 2.0 * acos
}

/**
 * @brief Sets q to the shortest rotation that turns from into to. Neither
 * input needs to be normalized.
 */
func (q *Quaternion) SetShortestRotation(from, to Vec3) {
	v0 := from.Normalized()
	v1 := to.Normalized()

	dot := v0.Dot(v1)

	// identical directions
	if dot >= 0.999999 {
		q.SetIdentity()
		return
	}

	// opposite directions, rotate 180 degrees around any orthogonal axis
	if dot <= -0.999999 {
		var axis Vec3
		if math32.Abs(v0.Dot(NewVec3Right())) < 0.8 {
			axis = v0.Cross(NewVec3Right())
		} else {
			axis = v0.Cross(NewVec3Up())
		}
		axis.Normalize()
		q.SetFromAxisAndAngle(axis, K_PI)
		return
	}

	c := v0.Cross(v1)
	s := math32.Sqrt((1.0 + dot) * 2.0)
	invs := 1.0 / s

	*q = Quaternion{c.X * invs, c.Y * invs, c.Z * invs, s * 0.5}
	q.Normalize()
}

/**
 * @brief Sets q to the spherical linear interpolation between from and to,
 * always along the shorter arc.
 *
 * @param from The rotation at t = 0.
 * @param to The rotation at t = 1.
 * @param t The interpolation factor, typically within [0, 1].
 */
func (q *Quaternion) SetSlerp(from, to Quaternion, t float32) {
	cosTheta := from.Dot(to)

	var sign float32 = 1.0
	if cosTheta < 0.0 {
		cosTheta = -cosTheta
		sign = -1.0
	}

	var t0, t1 float32
	if cosTheta < slerpCosThreshold {
		theta := math32.Acos(cosTheta)
		invSin := 1.0 / math32.Sin(theta)
		t0 = math32.Sin((1.0-t)*theta) * invSin
		t1 = math32.Sin(t*theta) * invSin
	} else {
		// too close for a stable division, interpolate linearly
		t0 = 1.0 - t
		t1 = t
	}
	t1 *= sign

	*q = Quaternion{
		from.X*t0 + to.X*t1,
		from.Y*t0 + to.Y*t1,
		from.Z*t0 + to.Z*t1,
		from.W*t0 + to.W*t1,
	}
	q.Normalize()
}

/**
 * @brief Sets q from Euler angles in radians. The rotation is applied
 * around z (yaw) first, then y (pitch), then x (roll).
 */
func (q *Quaternion) SetFromEulerAngles(x, y, z float32) {
	cr := math32.Cos(x * 0.5)
	sr := math32.Sin(x * 0.5)
	cp := math32.Cos(y * 0.5)
	sp := math32.Sin(y * 0.5)
	cy := math32.Cos(z * 0.5)
	sy := math32.Sin(z * 0.5)

	q.W = cr*cp*cy + sr*sp*sy
	q.X = sr*cp*cy - cr*sp*sy
	q.Y = cr*sp*cy + sr*cp*sy
	q.Z = cr*cp*sy - sr*sp*cy
}

/**
 * @brief Returns the Euler angles (x roll, y pitch, z yaw) in radians.
 * Inverse of SetFromEulerAngles.
 */
func (q Quaternion) GetAsEulerAngles() Vec3 {
	out := Vec3{}

	sinr_cosp := 2.0 * (q.W*q.X + q.Y*q.Z)
	cosr_cosp := 1.0 - 2.0*(q.X*q.X+q.Y*q.Y)
	out.X = math32.Atan2(sinr_cosp, cosr_cosp)

	// clamped since rounding can push the value past 1 near the poles
	sinp := Clamp(2.0*(q.W*q.Y-q.Z*q.X), -1.0, 1.0)
	out.Y = math32.Asin(sinp)

	siny_cosp := 2.0 * (q.W*q.Z + q.X*q.Y)
	cosy_cosp := 1.0 - 2.0*(q.Y*q.Y+q.Z*q.Z)
	out.Z = math32.Atan2(siny_cosp, cosy_cosp)

	return out
}

/**
 * @brief Returns the rotation as a 3x3 matrix. q must be normalized.
 */
func (q Quaternion) GetAsMat3() Mat3 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return NewMat3(
		1.0-2.0*(yy+zz), 2.0*(xy-wz), 2.0*(xz+wy),
		2.0*(xy+wz), 1.0-2.0*(xx+zz), 2.0*(yz-wx),
		2.0*(xz-wy), 2.0*(yz+wx), 1.0-2.0*(xx+yy),
	)
}

/**
 * @brief Creates a rotation matrix from the given quaternion.
 *
 * @return A rotation matrix without translation.
 */
func (q Quaternion) GetAsMat4() Mat4 {
	return NewMat4Transform(q.GetAsMat3(), NewVec3Zero())
}

/**
 * @brief Sets q from a pure rotation matrix.
 */
func (q *Quaternion) SetFromMat3(m Mat3) {
	// m<row><column>
	m00, m01, m02 := m.Data[0], m.Data[3], m.Data[6]
	m10, m11, m12 := m.Data[1], m.Data[4], m.Data[7]
	m20, m21, m22 := m.Data[2], m.Data[5], m.Data[8]

	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := 0.5 / math32.Sqrt(trace+1.0)
		q.W = 0.25 / s
		q.X = (m21 - m12) * s
		q.Y = (m02 - m20) * s
		q.Z = (m10 - m01) * s
	case m00 > m11 && m00 > m22:
		s := 2.0 * math32.Sqrt(1.0+m00-m11-m22)
		q.W = (m21 - m12) / s
		q.X = 0.25 * s
		q.Y = (m01 + m10) / s
		q.Z = (m02 + m20) / s
	case m11 > m22:
		s := 2.0 * math32.Sqrt(1.0+m11-m00-m22)
		q.W = (m02 - m20) / s
		q.X = (m01 + m10) / s
		q.Y = 0.25 * s
		q.Z = (m12 + m21) / s
	default:
		s := 2.0 * math32.Sqrt(1.0+m22-m00-m11)
		q.W = (m10 - m01) / s
		q.X = (m02 + m20) / s
		q.Y = (m12 + m21) / s
		q.Z = 0.25 * s
	}
}

// IsValid reports whether q is finite and normalized within epsilon.
func (q Quaternion) IsValid(epsilon float32) bool {
	if !IsFinite(q.X) || !IsFinite(q.Y) || !IsFinite(q.Z) || !IsFinite(q.W) {
		return false
	}
	return IsNumberEqual(q.Dot(q), 1.0, epsilon)
}

// IsNaN reports whether any component is NaN.
func (q Quaternion) IsNaN() bool {
	return math32.IsNaN(q.X) || math32.IsNaN(q.Y) || math32.IsNaN(q.Z) || math32.IsNaN(q.W)
}

// IsIdentical compares all components for exact equality.
func (q Quaternion) IsIdentical(other Quaternion) bool {
	return q == other
}

// IsEqual compares all components within epsilon. q and -q are NOT equal
// here, use IsEqualRotation for that.
func (q Quaternion) IsEqual(other Quaternion, epsilon float32) bool {
	return IsNumberEqual(q.X, other.X, epsilon) &&
		IsNumberEqual(q.Y, other.Y, epsilon) &&
		IsNumberEqual(q.Z, other.Z, epsilon) &&
		IsNumberEqual(q.W, other.W, epsilon)
}

/**
 * @brief Reports whether q and other describe the same rotation. Since q and
 * -q rotate identically both are accepted.
 */
func (q Quaternion) IsEqualRotation(other Quaternion, epsilon float32) bool {
	return q.IsEqual(other, epsilon) || q.IsEqual(other.Negated(), epsilon)
}
