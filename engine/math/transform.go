package math

// NewTransformIdentity returns a transform with zero position, identity
// rotation and unit scale.
func NewTransformIdentity() Transform {
	return Transform{
		Position: NewVec3Zero(),
		Rotation: NewQuatIdentity(),
		Scale:    NewVec3One(),
	}
}

func NewTransform(position Vec3, rotation Quaternion, scale Vec3) Transform {
	return Transform{Position: position, Rotation: rotation, Scale: scale}
}

func NewTransformFromPosition(position Vec3) Transform {
	return NewTransform(position, NewQuatIdentity(), NewVec3One())
}

func NewTransformFromRotation(rotation Quaternion) Transform {
	return NewTransform(NewVec3Zero(), rotation, NewVec3One())
}

func NewTransformFromPositionRotation(position Vec3, rotation Quaternion) Transform {
	return NewTransform(position, rotation, NewVec3One())
}

// NewTransformFromMat4 decomposes m into translation, rotation and scale.
// It returns false if any basis column of m has zero length.
func NewTransformFromMat4(m Mat4) (Transform, bool) {
	t := NewTransformIdentity()
	ok := t.SetFromMat4(m)
	return t, ok
}

func (t *Transform) SetIdentity() {
	*t = NewTransformIdentity()
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
}

func (t *Transform) ScaleBy(scale Vec3) {
	t.Scale = t.Scale.CompMul(scale)
}

// PreRotate applies q after the transform, rotating position and
// orientation around the origin.
func (t *Transform) PreRotate(q Quaternion) {
	t.Position = q.RotateVec3(t.Position)
	t.Rotation = q.Mul(t.Rotation)
}

// PostRotate applies q in local space, before the current rotation.
func (t *Transform) PostRotate(q Quaternion) {
	t.Rotation = t.Rotation.Mul(q)
}

// TransformPosition maps p to Rotation*(p*Scale) + Position.
func (t Transform) TransformPosition(p Vec3) Vec3 {
	return t.Rotation.RotateVec3(p.CompMul(t.Scale)).Add(t.Position)
}

// TransformDirection maps d to Rotation*(d*Scale), ignoring the position.
func (t Transform) TransformDirection(d Vec3) Vec3 {
	return t.Rotation.RotateVec3(d.CompMul(t.Scale))
}

// Mul returns t∘rhs, the transform that applies rhs first and then t.
func (t Transform) Mul(rhs Transform) Transform {
	return Transform{
		Position: t.TransformPosition(rhs.Position),
		Rotation: t.Rotation.Mul(rhs.Rotation),
		Scale:    t.Scale.CompMul(rhs.Scale),
	}
}

// MulTransform sets t = t∘rhs.
func (t *Transform) MulTransform(rhs Transform) {
	*t = t.Mul(rhs)
}

// SetGlobalTransform sets t to the global transform of a child whose
// local transform is local, below a parent with global transform parent.
func (t *Transform) SetGlobalTransform(parent, local Transform) {
	*t = parent.Mul(local)
}

// SetLocalTransform sets t to the local transform a child needs below
// parent to end up at global. It is the inverse of SetGlobalTransform.
func (t *Transform) SetLocalTransform(parent, global Transform) {
	invRot := parent.Rotation.Inverse()
	invScale := Vec3{1.0 / parent.Scale.X, 1.0 / parent.Scale.Y, 1.0 / parent.Scale.Z}

	t.Position = invRot.RotateVec3(global.Position.Sub(parent.Position)).CompMul(invScale)
	t.Rotation = invRot.Mul(global.Rotation)
	t.Scale = global.Scale.CompMul(invScale)
}

/**
 * @brief Inverts the transform in place. A zero scale component yields
 * infinite or NaN values.
 */
func (t *Transform) Invert() {
	t.Rotation = t.Rotation.Inverse()
	t.Scale = Vec3{1.0 / t.Scale.X, 1.0 / t.Scale.Y, 1.0 / t.Scale.Z}
	t.Position = t.Rotation.RotateVec3(t.Position.Negated()).CompMul(t.Scale)
}

// Inverse returns the inverted transform.
func (t Transform) Inverse() Transform {
	t.Invert()
	return t
}

/**
 * @brief Returns the transform as a 4x4 matrix: rotation with each basis
 * column scaled, plus translation.
 */
func (t Transform) GetAsMat4() Mat4 {
	rotation := t.Rotation.GetAsMat3()
	for col, s := range [3]float32{t.Scale.X, t.Scale.Y, t.Scale.Z} {
		for row := 0; row < 3; row++ {
			rotation.Data[col*3+row] *= s
		}
	}
	return NewMat4Transform(rotation, t.Position)
}

/**
 * @brief Decomposes m into the transform. Shear is lost.
 *
 * @return false, leaving t unchanged, if a basis column of m has zero length.
 */
func (t *Transform) SetFromMat4(m Mat4) bool {
	rotation := m.GetRotationalPart()
	scale := rotation.GetScalingFactors()
	if !rotation.SetScalingFactors(1, 1, 1, SmallEpsilon) {
		return false
	}
	q := NewQuatFromMat3(rotation)
	q.Normalize()

	t.Position = m.GetTranslationVector()
	t.Rotation = q
	t.Scale = scale
	return true
}

func (t Transform) IsIdentity(epsilon float32) bool {
	return t.IsEqual(NewTransformIdentity(), epsilon)
}

func (t Transform) IsIdentical(rhs Transform) bool {
	return t.Position.IsIdentical(rhs.Position) &&
		t.Rotation.IsIdentical(rhs.Rotation) &&
		t.Scale.IsIdentical(rhs.Scale)
}

// IsEqual compares position and scale within epsilon. Rotations are compared
// with IsEqualRotation.
func (t Transform) IsEqual(rhs Transform, epsilon float32) bool {
	return t.Position.IsEqual(rhs.Position, epsilon) &&
		t.Rotation.IsEqualRotation(rhs.Rotation, epsilon) &&
		t.Scale.IsEqual(rhs.Scale, epsilon)
}

func (t Transform) IsValid() bool {
	return t.Position.IsValid() && t.Rotation.IsValid(LargeEpsilon) && t.Scale.IsValid()
}
