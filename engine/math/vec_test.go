package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestVec2Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, 5)

	assert.Equal(t, NewVec2(4, 7), a.Add(b))
	assert.Equal(t, NewVec2(-2, -3), a.Sub(b))
	assert.Equal(t, NewVec2(3, 10), a.Mul(b))
	assert.Equal(t, NewVec2(2, 4), a.MulScalar(2))
	assert.Equal(t, NewVec2(0.5, 1), a.DivScalar(2))
	assert.Equal(t, float32(13), a.Dot(b))

	var v Vec2
	v.SetAdd(a, b)
	assert.Equal(t, NewVec2(4, 7), v)
	v.SetSub(a, b)
	assert.Equal(t, NewVec2(-2, -3), v)
	v.SetMul(a, 3)
	assert.Equal(t, NewVec2(3, 6), v)
	v.SetDiv(b, 2)
	assert.Equal(t, NewVec2(1.5, 2.5), v)
}

func TestVec2Orthogonal(t *testing.T) {
	v := NewVec2(3, 4)
	assert.Equal(t, float32(0), v.Dot(v.GetOrthogonalVector()))

	v.MakeOrthogonalTo(NewVec2Right())
	assert.True(t, v.IsEqual(NewVec2(0, 4), testEpsilon))
	assert.Equal(t, NewVec3(1, 2, 7), NewVec2(1, 2).ToVec3(7))
}

func TestVec3Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	assert.Equal(t, NewVec3(5, 7, 9), a.Add(b))
	assert.Equal(t, NewVec3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, NewVec3(4, 10, 18), a.Mul(b))
	assert.Equal(t, NewVec3(4, 2.5, 2), b.Div(a))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, NewVec3(-3, 6, -3), a.Cross(b))
	assert.Equal(t, NewVec3(0, 0, 1), NewVec3Right().Cross(NewVec3Up()))

	var v Vec3
	v.SetAdd(a, b)
	assert.Equal(t, NewVec3(5, 7, 9), v)
	v.SetMul(a, 2)
	assert.Equal(t, NewVec3(2, 4, 6), v)
	v.SetDiv(v, 2)
	assert.Equal(t, a, v)

	v.Negate()
	assert.Equal(t, NewVec3(-1, -2, -3), v)
	assert.Equal(t, a, v.Negated())
	assert.Equal(t, a, v.Abs())
}

func TestVec3ComponentWise(t *testing.T) {
	a := NewVec3(1, 5, -3)
	b := NewVec3(2, 4, -6)

	assert.Equal(t, NewVec3(1, 4, -6), a.CompMin(b))
	assert.Equal(t, NewVec3(2, 5, -3), a.CompMax(b))
	assert.Equal(t, NewVec3(1, 2, -1), a.CompClamp(NewVec3(0, 0, -1), NewVec3(2, 2, 2)))
	assert.Equal(t, NewVec3(2, 20, 18), a.CompMul(b))
	assert.Equal(t, NewVec3(0.5, 1.25, 0.5), a.CompDiv(b))
}

func TestVec3Length(t *testing.T) {
	v := NewVec3(0, 3, 4)
	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, float32(5), v.Length())

	n := v.Normalized()
	assert.True(t, n.IsNormalized(testEpsilon))
	assertVec3(t, NewVec3(0, 0.6, 0.8), n)
	assertVec3(t, n, n.Normalized(), "normalizing twice")

	length := v.GetLengthAndNormalize()
	assert.Equal(t, float32(5), length)
	assertVec3(t, n, v)

	assert.Equal(t, float32(5), NewVec3(1, 1, 1).Distance(NewVec3(1, 4, 5)))
	assert.Equal(t, float32(25), NewVec3(1, 1, 1).DistanceSquared(NewVec3(1, 4, 5)))
}

func TestVec3NormalizeIfNotZero(t *testing.T) {
	v := NewVec3(0, 0, 2)
	require.True(t, v.NormalizeIfNotZero(NewVec3Right(), DefaultEpsilon))
	assert.Equal(t, NewVec3(0, 0, 1), v)

	z := NewVec3(0, 0.000001, 0)
	require.False(t, z.NormalizeIfNotZero(NewVec3Up(), DefaultEpsilon))
	assert.Equal(t, NewVec3Up(), z)

	nan := NewVec3(math32.NaN(), 0, 0)
	require.False(t, nan.NormalizeIfNotZero(NewVec3Back(), DefaultEpsilon))
	assert.Equal(t, NewVec3Back(), nan)
}

func TestVec3SetLength(t *testing.T) {
	v := NewVec3(1, 0, 0)
	require.True(t, v.SetLength(3, DefaultEpsilon))
	assert.Equal(t, NewVec3(3, 0, 0), v)

	zero := NewVec3Zero()
	assert.False(t, zero.SetLength(3, DefaultEpsilon))
	assert.Equal(t, NewVec3Zero(), zero)
}

func TestVec3Predicates(t *testing.T) {
	assert.True(t, NewVec3(0.00001, 0, -0.00001).IsZero(DefaultEpsilon))
	assert.False(t, NewVec3(0.1, 0, 0).IsZero(DefaultEpsilon))
	assert.True(t, NewVec3(1, 2, 3).IsIdentical(NewVec3(1, 2, 3)))
	assert.False(t, NewVec3(1, 2, 3).IsIdentical(NewVec3(1, 2, 3.00001)))
	assert.True(t, NewVec3(1, 2, 3).IsEqual(NewVec3(1, 2, 3.00001), testEpsilon))
	assert.True(t, NewVec3(math32.NaN(), 0, 0).IsNaN())
	assert.False(t, NewVec3(math32.Inf(1), 0, 0).IsValid())
	assert.True(t, NewVec3(1, 2, 3).IsValid())
}

func TestVec3Reflection(t *testing.T) {
	reflected := NewVec3(1, 1, 0).GetReflectedVector(NewVec3Down())
	assertVec3(t, NewVec3(1, -1, 0), reflected)
}

func TestVec3Orthogonal(t *testing.T) {
	for _, v := range []Vec3{NewVec3(1, 2, 3), NewVec3Up(), NewVec3(0, -5, 0.001), NewVec3Forward()} {
		o := v.GetOrthogonalVector()
		assert.InDelta(t, 0, v.Dot(o), 1e-5)
		assert.False(t, o.IsZero(SmallEpsilon))
	}

	v := NewVec3(1, 1, 0)
	v.MakeOrthogonalTo(NewVec3Right())
	assertVec3(t, NewVec3(0, 1, 0), v)
}

func TestVec3CalculateNormal(t *testing.T) {
	var n Vec3
	require.True(t, n.CalculateNormal(NewVec3(-1, 0, 1), NewVec3(1, 0, 1), NewVec3(0, 0, -1)))
	assertVec3(t, NewVec3(0, 1, 0), n)

	require.False(t, n.CalculateNormal(NewVec3(1, 1, 1), NewVec3(2, 2, 2), NewVec3(3, 3, 3)))
}

func TestVec3LerpAndAngle(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(10, -10, 4)
	assertVec3(t, NewVec3(5, -5, 2), a.Lerp(b, 0.5))
	assertVec3(t, b, a.Lerp(b, 1))

	assert.InDelta(t, K_HALF_PI, NewVec3Right().AngleBetween(NewVec3Up()), 1e-5)
	assert.InDelta(t, K_PI, NewVec3Right().AngleBetween(NewVec3Left()), 1e-5)
	assert.InDelta(t, 0, NewVec3Up().AngleBetween(NewVec3Up()), 1e-3)
}

func TestRandomPointInSphere(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	var sum Vec3
	const samples = 1000
	for i := 0; i < samples; i++ {
		p := NewVec3RandomPointInSphere(r)
		require.LessOrEqual(t, p.Length(), float32(1.0)+SmallEpsilon)
		sum = sum.Add(p)
	}
	mean := sum.DivScalar(samples)
	assert.True(t, mean.IsZero(0.1), "mean %+v", mean)
}

func TestRandomDirections(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		assert.True(t, NewVec3RandomDirection(r).IsNormalized(testEpsilon))
		assert.True(t, NewVec2RandomDirection(r).IsNormalized(testEpsilon))
		assert.LessOrEqual(t, NewVec2RandomPointInCircle(r).Length(), float32(1.0)+SmallEpsilon)
	}

	// the shared source is usable without a seed
	assert.LessOrEqual(t, NewVec3RandomPointInSphere(nil).Length(), float32(1.0)+SmallEpsilon)
}

func TestVec3TransformByMat4(t *testing.T) {
	m := NewMat4Translation(NewVec3(1, 2, 3))
	assertVec3(t, NewVec3(2, 3, 4), NewVec3(1, 1, 1).Transform(m))
}
