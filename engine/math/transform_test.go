package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func randomTransform(r *rand.Rand) Transform {
	scale := NewVec3(0.5+r.Float32()*2, 0.5+r.Float32()*2, 0.5+r.Float32()*2)
	if r.Intn(2) == 0 {
		scale.Y = -scale.Y
	}
	return NewTransform(NewVec3RandomPointInSphere(r).MulScalar(10), randomRotation(r), scale)
}

func TestTransformIdentity(t *testing.T) {
	id := NewTransformIdentity()
	assert.True(t, id.IsIdentity(0))
	assert.True(t, id.IsValid())
	assertMat4(t, NewMat4Identity(), id.GetAsMat4())
	assert.Equal(t, NewVec3(1, 2, 3), id.TransformPosition(NewVec3(1, 2, 3)))

	var zero Transform
	assert.False(t, zero.IsIdentity(testEpsilon))
	zero.SetIdentity()
	assert.True(t, zero.IsIdentical(id))
}

func TestTransformComposition(t *testing.T) {
	parent := NewTransform(
		NewVec3(1, 2, 3),
		NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI),
		NewVec3(2, 2, 2),
	)
	child := NewTransform(
		NewVec3(4, 5, 6),
		NewQuatFromAxisAngle(NewVec3Back(), K_HALF_PI),
		NewVec3(4, 4, 4),
	)

	var global Transform
	global.SetGlobalTransform(parent, child)
	assertVec3(t, NewVec3(13, 12, -5), global.Position)
	assertVec3(t, NewVec3(8, 8, 8), global.Scale)
	assertMat3(t, NewMat3(0, 0, 1, 1, 0, 0, 0, 1, 0), global.Rotation.GetAsMat3())

	assert.True(t, global.IsEqual(parent.Mul(child), testEpsilon))

	mt := parent
	mt.MulTransform(child)
	assert.True(t, global.IsEqual(mt, testEpsilon))

	// uniform scales compose like matrices
	assertMat4(t, parent.GetAsMat4().Mul(child.GetAsMat4()), global.GetAsMat4())

	var local Transform
	local.SetLocalTransform(parent, global)
	assert.True(t, local.IsEqual(child, testEpsilon), "%+v", local)
}

func TestTransformPositionAndDirection(t *testing.T) {
	qx := NewQuatFromAxisAngle(NewVec3Right(), K_HALF_PI)
	qy := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI)

	tr := NewTransform(NewVec3(1, 2, 3), qy.Mul(qx), NewVec3(2, -2, 4))
	assertVec3(t, NewVec3(-9, -22, -5), tr.TransformPosition(NewVec3(4, 5, 6)))
	assertVec3(t, NewVec3(-10, -24, -8), tr.TransformDirection(NewVec3(4, 5, 6)))

	m := tr.GetAsMat4()
	assertVec3(t, NewVec3(-9, -22, -5), m.TransformPosition(NewVec3(4, 5, 6)))
	assertVec3(t, NewVec3(-10, -24, -8), m.TransformDirection(NewVec3(4, 5, 6)))
}

func TestTransformInverse(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		tr := randomTransform(r)

		combined := tr.Mul(tr.Inverse())
		assert.True(t, combined.IsIdentity(testEpsilon), "%+v", combined)

		inv := tr
		inv.Invert()
		assert.True(t, inv.IsEqual(tr.Inverse(), 0))
	}

	// with uniform scale the inverse maps positions back
	tr := NewTransform(NewVec3(3, -1, 2), NewQuatFromAxisAngle(NewVec3(1, 1, 0).Normalized(), 0.7), NewVec3(3, 3, 3))
	p := NewVec3(7, 8, 9)
	assertVec3(t, p, tr.Inverse().TransformPosition(tr.TransformPosition(p)))
}

func TestTransformLocalGlobalRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	for i := 0; i < 50; i++ {
		parent := randomTransform(r)
		local := randomTransform(r)

		var global, back Transform
		global.SetGlobalTransform(parent, local)
		back.SetLocalTransform(parent, global)
		assert.True(t, back.IsEqual(local, 0.001), "expected %+v, got %+v", local, back)
	}
}

func TestTransformMat4RoundTrip(t *testing.T) {
	tr := NewTransform(
		NewVec3(-4, 2, 9),
		NewQuatFromEulerAngles(0.3, -1.1, 2.5),
		NewVec3(0.5, 2, 3),
	)

	back, ok := NewTransformFromMat4(tr.GetAsMat4())
	require.True(t, ok)
	assert.True(t, back.IsEqual(tr, testEpsilon), "%+v", back)

	_, ok = NewTransformFromMat4(NewMat4Scale(NewVec3(1, 0, 1)))
	assert.False(t, ok)

	unchanged := NewTransformIdentity()
	assert.False(t, unchanged.SetFromMat4(NewMat4Zero()))
	assert.True(t, unchanged.IsIdentity(0))
}

func TestTransformRotations(t *testing.T) {
	q := NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI)

	pre := NewTransformFromPosition(NewVec3(1, 0, 0))
	pre.PreRotate(q)
	assertVec3(t, NewVec3(0, 0, -1), pre.Position)
	assertVec3(t, NewVec3(0, 0, -2), pre.TransformPosition(NewVec3(1, 0, 0)))

	post := NewTransformFromPosition(NewVec3(1, 0, 0))
	post.PostRotate(q)
	assertVec3(t, NewVec3(1, 0, 0), post.Position)
	assertVec3(t, NewVec3(1, 0, -1), post.TransformPosition(NewVec3(1, 0, 0)))
}

func TestTransformMutators(t *testing.T) {
	tr := NewTransformFromRotation(NewQuatIdentity())
	tr.Translate(NewVec3(1, 2, 3))
	tr.Translate(NewVec3(1, 1, 1))
	tr.ScaleBy(NewVec3(2, 3, 4))
	assert.Equal(t, NewVec3(2, 3, 4), tr.Position)
	assert.Equal(t, NewVec3(2, 3, 4), tr.Scale)

	tr.SetPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
	assert.True(t, tr.IsIdentity(0))

	pr := NewTransformFromPositionRotation(NewVec3(1, 0, 0), NewQuatIdentity())
	assert.Equal(t, NewVec3One(), pr.Scale)
}
