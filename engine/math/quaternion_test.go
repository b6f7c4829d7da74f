package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randomRotation(r *rand.Rand) Quaternion {
	return NewQuatFromAxisAngle(NewVec3RandomDirection(r), (r.Float32()*2-1)*K_PI)
}

func TestQuatIdentity(t *testing.T) {
	q := NewQuatIdentity()
	assert.Equal(t, Quaternion{0, 0, 0, 1}, q)
	assert.Equal(t, NewVec3(1, 2, 3), q.RotateVec3(NewVec3(1, 2, 3)))
	assertMat3(t, NewMat3Identity(), q.GetAsMat3())
	assertMat4(t, NewMat4Identity(), q.GetAsMat4())
}

func TestQuatAxisAngle(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3Right(), K_HALF_PI)
	assert.InDelta(t, K_SQRT_ONE_OVER_TWO, q.X, 1e-6)
	assert.InDelta(t, K_SQRT_ONE_OVER_TWO, q.W, 1e-6)
	assertVec3(t, NewVec3(1, -3, 2), q.RotateVec3(NewVec3(1, 2, 3)))

	axis, angle := q.GetRotationAxisAndAngle(DefaultEpsilon)
	assertVec3(t, NewVec3Right(), axis)
	assert.InDelta(t, K_HALF_PI, angle, 1e-5)

	axis, angle = NewQuatIdentity().GetRotationAxisAndAngle(DefaultEpsilon)
	assert.Equal(t, NewVec3Right(), axis)
	assert.InDelta(t, 0, angle, 1e-5)
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		q := randomRotation(r)
		v := NewVec3RandomPointInSphere(r).MulScalar(10)
		assertVec3(t, q.GetAsMat3().TransformDirection(v), q.RotateVec3(v))
		assertVec3(t, q.GetAsMat4().TransformPosition(v), q.RotateVec3(v))
	}
}

func TestQuatMat3RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		q := randomRotation(r)
		back := NewQuatFromMat3(q.GetAsMat3())
		assertRotation(t, q, back)
	}

	// exercise every branch of the trace method
	for _, q := range []Quaternion{
		NewQuatFromAxisAngle(NewVec3Right(), DegreeToRadian(179)),
		NewQuatFromAxisAngle(NewVec3Up(), DegreeToRadian(179)),
		NewQuatFromAxisAngle(NewVec3Back(), DegreeToRadian(179)),
		NewQuatFromAxisAngle(NewVec3Up(), DegreeToRadian(10)),
	} {
		assertRotation(t, q, NewQuatFromMat3(q.GetAsMat3()))
	}
}

func TestQuatConcatenation(t *testing.T) {
	qx := NewQuatFromAxisAngle(NewVec3Right(), K_HALF_PI)
	qz := NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI)
	v := NewVec3(1, 2, 3)

	// qx * qz rotates around z first
	expected := qx.RotateVec3(qz.RotateVec3(v))
	assertVec3(t, expected, qx.Mul(qz).RotateVec3(v))

	q := qx
	q.ConcatenateRotations(qz)
	assertVec3(t, expected, q.RotateVec3(v))

	var s Quaternion
	s.SetConcatenatedRotations(qx, qz)
	assert.Equal(t, q, s)

	assertMat3(t, qx.GetAsMat3().Mul(qz.GetAsMat3()), s.GetAsMat3())
}

func TestQuatInverse(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3(1, 2, 3).Normalized(), 1.2)
	v := NewVec3(4, 5, 6)
	assertVec3(t, v, q.Inverse().RotateVec3(q.RotateVec3(v)))
	assertRotation(t, NewQuatIdentity(), q.Mul(q.Inverse()))

	inv := q
	inv.Invert()
	assert.Equal(t, q.Conjugate(), inv)
}

func TestQuatDoubleCover(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		q := randomRotation(r)
		n := q.Negated()
		assert.True(t, q.IsEqualRotation(n, DefaultEpsilon))
		assert.False(t, q.IsEqual(n, DefaultEpsilon))

		v := NewVec3(1, -2, 3)
		assertVec3(t, q.RotateVec3(v), n.RotateVec3(v))
	}

	a := NewQuatFromAxisAngle(NewVec3Up(), 0.5)
	b := NewQuatFromAxisAngle(NewVec3Up(), 0.6)
	assert.False(t, a.IsEqualRotation(b, DefaultEpsilon))
}

func TestQuatShortestRotation(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"general", NewVec3(1, 0, 0), NewVec3(0, 1, 0)},
		{"unnormalized", NewVec3(3, 4, 0), NewVec3(0, 0, -7)},
		{"same", NewVec3(1, 1, 1), NewVec3(2, 2, 2)},
		{"opposite x", NewVec3(1, 0, 0), NewVec3(-1, 0, 0)},
		{"opposite y", NewVec3(0, 2, 0), NewVec3(0, -1, 0)},
		{"opposite z", NewVec3(0, 0, 1), NewVec3(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuatShortestRotation(tt.from, tt.to)
			assert.True(t, q.IsValid(testEpsilon))
			assertVec3(t, tt.to.Normalized(), q.RotateVec3(tt.from.Normalized()))
		})
	}

	q := NewQuatShortestRotation(NewVec3Up(), NewVec3Up())
	assert.Equal(t, NewQuatIdentity(), q)

	q = NewQuatShortestRotation(NewVec3Right(), NewVec3Up())
	axis, angle := q.GetRotationAxisAndAngle(DefaultEpsilon)
	assertVec3(t, NewVec3Back(), axis)
	assert.InDelta(t, K_HALF_PI, angle, 1e-5)
}

func TestQuatSlerp(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 20; i++ {
		a := randomRotation(r)
		b := randomRotation(r)

		assertRotation(t, a, NewQuatSlerp(a, b, 0))
		assertRotation(t, b, NewQuatSlerp(a, b, 1))
		assert.True(t, NewQuatSlerp(a, b, 0.3).IsValid(testEpsilon))
	}

	from := NewQuatIdentity()
	to := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI)
	assertRotation(t, NewQuatFromAxisAngle(NewVec3Up(), K_QUARTER_PI), NewQuatSlerp(from, to, 0.5))

	// takes the short way even when the operands are in opposite hemispheres
	assertRotation(t, NewQuatFromAxisAngle(NewVec3Up(), K_QUARTER_PI), NewQuatSlerp(from, to.Negated(), 0.5))

	// nearly identical inputs fall back to a normalized lerp
	near := NewQuatFromAxisAngle(NewVec3Up(), 0.001)
	mid := NewQuatSlerp(from, near, 0.5)
	assert.True(t, mid.IsValid(testEpsilon))
	assertRotation(t, NewQuatFromAxisAngle(NewVec3Up(), 0.0005), mid)

	// small but not tiny angles still interpolate at constant angular speed
	wide := NewQuatFromAxisAngle(NewVec3Up(), DegreeToRadian(15))
	_, angle := NewQuatSlerp(from, wide, 0.25).GetRotationAxisAndAngle(SmallEpsilon)
	assert.InDelta(t, 3.75, RadianToDegree(angle), 5e-4)
}

func TestQuatEulerAngles(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"zero", 0, 0, 0},
		{"roll", 30, 0, 0},
		{"pitch", 0, 45, 0},
		{"yaw", 0, 0, 60},
		{"mixed", 10, -20, 130},
		{"negative", -170, 80, -95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuatFromEulerAngles(DegreeToRadian(tt.x), DegreeToRadian(tt.y), DegreeToRadian(tt.z))
			assert.True(t, q.IsValid(testEpsilon))

			euler := q.GetAsEulerAngles()
			assert.InDelta(t, tt.x, RadianToDegree(euler.X), 0.01)
			assert.InDelta(t, tt.y, RadianToDegree(euler.Y), 0.01)
			assert.InDelta(t, tt.z, RadianToDegree(euler.Z), 0.01)
		})
	}

	// z is applied first, then y, then x
	x, y, z := DegreeToRadian(10), DegreeToRadian(20), DegreeToRadian(30)
	composed := NewQuatFromAxisAngle(NewVec3Back(), z).Mul(
		NewQuatFromAxisAngle(NewVec3Up(), y).Mul(NewQuatFromAxisAngle(NewVec3Right(), x)))
	assertRotation(t, composed, NewQuatFromEulerAngles(x, y, z))
}

func TestQuatEulerGimbalLock(t *testing.T) {
	q := NewQuatFromEulerAngles(0, K_HALF_PI, 0)
	// push past the pole to check the clamp
	q.W *= 1.0001
	euler := q.GetAsEulerAngles()
	assert.False(t, euler.IsNaN())
	assert.InDelta(t, 90, RadianToDegree(euler.Y), 0.1)
}

func TestQuatNormalize(t *testing.T) {
	q := NewQuat(1, 2, 3, 4)
	assert.False(t, q.IsValid(testEpsilon))
	q.Normalize()
	require.True(t, q.IsValid(testEpsilon))
	assert.InDelta(t, 1, q.Normal(), 1e-6)
	assert.True(t, q.IsEqual(q.Normalized(), 1e-6))
	assert.False(t, q.IsNaN())

	var id Quaternion
	id.SetIdentity()
	assert.True(t, id.IsIdentical(NewQuatIdentity()))
	assert.Equal(t, float32(1), id.Dot(NewQuatIdentity()))
}
