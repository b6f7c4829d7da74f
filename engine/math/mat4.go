package math

import (
	"github.com/chewxy/math32"
)

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------

/**
 * @brief Creates a matrix from its elements given in reading order, row by row.
 */
func NewMat4(
	c1r1, c2r1, c3r1, c4r1,
	c1r2, c2r2, c3r2, c4r2,
	c1r3, c2r3, c3r3, c4r3,
	c1r4, c2r4, c3r4, c4r4 float32,
) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetElements(
		c1r1, c2r1, c3r1, c4r1,
		c1r2, c2r2, c3r2, c4r2,
		c1r3, c2r3, c3r3, c4r3,
		c1r4, c2r4, c3r4, c4r4,
	)
	return out_matrix
}

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a matrix with all elements set to zero.
 */
func NewMat4Zero() Mat4 {
	return Mat4{}
}

// NewMat4FromArray creates a matrix from a flat array in the given order.
func NewMat4FromArray(data [16]float32, columnMajor bool) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetFromArray(data, columnMajor)
	return out_matrix
}

/**
 * @brief Creates a matrix that applies rotation and then translation.
 *
 * @param rotation The rotation (and scale) block.
 * @param translation The translation.
 */
func NewMat4Transform(rotation Mat3, translation Vec3) Mat4 {
	out_matrix := Mat4{}
	out_matrix.SetTransformationMatrix(rotation, translation)
	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (near_clip - far_clip)

	out_matrix.Data[0] = -2.0 * lr
	out_matrix.Data[5] = -2.0 * bt
	out_matrix.Data[10] = 2.0 * nf

	out_matrix.Data[12] = (left + right) * lr
	out_matrix.Data[13] = (top + bottom) * bt
	out_matrix.Data[14] = (far_clip + near_clip) * nf
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_radians The field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	half_tan_fov := math32.Tan(fov_radians * 0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0 / (aspect_ratio * half_tan_fov)
	out_matrix.Data[5] = 1.0 / half_tan_fov
	out_matrix.Data[10] = -((far_clip + near_clip) / (far_clip - near_clip))
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = -((2.0 * far_clip * near_clip) / (far_clip - near_clip))
	return out_matrix
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position. The rows of the rotational
 * part hold the camera axes.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	z_axis := target.Sub(position)
	z_axis.Normalize()
	x_axis := z_axis.Cross(up)
	x_axis.Normalize()
	y_axis := x_axis.Cross(z_axis)

	return NewMat4(
		x_axis.X, x_axis.Y, x_axis.Z, -x_axis.Dot(position),
		y_axis.X, y_axis.Y, y_axis.Z, -y_axis.Dot(position),
		-z_axis.X, -z_axis.Y, -z_axis.Z, z_axis.Dot(position),
		0, 0, 0, 1,
	)
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angle_radians float32) Mat4 {
	return NewMat4Transform(NewMat3RotationX(angle_radians), NewVec3Zero())
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle_radians float32) Mat4 {
	return NewMat4Transform(NewMat3RotationY(angle_radians), NewVec3Zero())
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float32) Mat4 {
	return NewMat4Transform(NewMat3RotationZ(angle_radians), NewVec3Zero())
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations.
 * The result applies z first, then y, then x.
 *
 * @param x_radians The x rotation.
 * @param y_radians The y rotation.
 * @param z_radians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float32) Mat4 {
	rx := NewMat4EulerX(x_radians)
	ry := NewMat4EulerY(y_radians)
	rz := NewMat4EulerZ(z_radians)
	return rx.Mul(ry).Mul(rz)
}

/**
 * @brief Creates a rotation matrix around an arbitrary normalized axis.
 */
func NewMat4RotationAxis(axis Vec3, angle_radians float32) Mat4 {
	return NewMat4Transform(NewMat3RotationAxis(axis, angle_radians), NewVec3Zero())
}

// SetElements overwrites all elements, given row by row.
func (mt *Mat4) SetElements(
	c1r1, c2r1, c3r1, c4r1,
	c1r2, c2r2, c3r2, c4r2,
	c1r3, c2r3, c3r3, c4r3,
	c1r4, c2r4, c3r4, c4r4 float32,
) {
	mt.Data[0], mt.Data[4], mt.Data[8], mt.Data[12] = c1r1, c2r1, c3r1, c4r1
	mt.Data[1], mt.Data[5], mt.Data[9], mt.Data[13] = c1r2, c2r2, c3r2, c4r2
	mt.Data[2], mt.Data[6], mt.Data[10], mt.Data[14] = c1r3, c2r3, c3r3, c4r3
	mt.Data[3], mt.Data[7], mt.Data[11], mt.Data[15] = c1r4, c2r4, c3r4, c4r4
}

// SetIdentity resets the matrix to identity.
func (mt *Mat4) SetIdentity() {
	*mt = NewMat4Identity()
}

// SetZero sets every element to zero.
func (mt *Mat4) SetZero() {
	*mt = Mat4{}
}

/**
 * @brief Copies data into the matrix. When columnMajor is false the array is
 * read row by row.
 */
func (mt *Mat4) SetFromArray(data [16]float32, columnMajor bool) {
	if columnMajor {
		mt.Data = data
		return
	}
	for i := 0; i < 16; i++ {
		mt.Data[(i%4)*4+i/4] = data[i]
	}
}

/**
 * @brief Returns the elements as a flat array, column by column when
 * columnMajor is true, row by row otherwise.
 */
func (mt Mat4) GetAsArray(columnMajor bool) [16]float32 {
	if columnMajor {
		return mt.Data
	}
	var out [16]float32
	for i := 0; i < 16; i++ {
		out[i] = mt.Data[(i%4)*4+i/4]
	}
	return out
}

// GetElement returns the element at the given column and row.
func (mt Mat4) GetElement(column, row int) float32 {
	checkIndex("column", column, 4)
	checkIndex("row", row, 4)
	return mt.Data[column*4+row]
}

// SetElement writes the element at the given column and row.
func (mt *Mat4) SetElement(column, row int, value float32) {
	checkIndex("column", column, 4)
	checkIndex("row", row, 4)
	mt.Data[column*4+row] = value
}

// GetRow returns the row with the given index.
func (mt Mat4) GetRow(row int) [4]float32 {
	checkIndex("row", row, 4)
	return [4]float32{mt.Data[row], mt.Data[4+row], mt.Data[8+row], mt.Data[12+row]}
}

// SetRow writes the row with the given index.
func (mt *Mat4) SetRow(row int, values [4]float32) {
	checkIndex("row", row, 4)
	for col := 0; col < 4; col++ {
		mt.Data[col*4+row] = values[col]
	}
}

// GetColumn returns the column with the given index.
func (mt Mat4) GetColumn(column int) [4]float32 {
	checkIndex("column", column, 4)
	var out [4]float32
	copy(out[:], mt.Data[column*4:column*4+4])
	return out
}

// SetColumn writes the column with the given index.
func (mt *Mat4) SetColumn(column int, values [4]float32) {
	checkIndex("column", column, 4)
	copy(mt.Data[column*4:column*4+4], values[:])
}

// GetDiagonal returns the elements of the main diagonal.
func (mt Mat4) GetDiagonal() [4]float32 {
	return [4]float32{mt.Data[0], mt.Data[5], mt.Data[10], mt.Data[15]}
}

// SetDiagonal writes the main diagonal.
func (mt *Mat4) SetDiagonal(values [4]float32) {
	mt.Data[0], mt.Data[5], mt.Data[10], mt.Data[15] = values[0], values[1], values[2], values[3]
}

/**
 * @brief Returns the upper-left 3x3 block that holds rotation and scale.
 */
func (mt Mat4) GetRotationalPart() Mat3 {
	out_matrix := Mat3{}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			out_matrix.Data[col*3+row] = mt.Data[col*4+row]
		}
	}
	return out_matrix
}

// SetRotationalPart overwrites the upper-left 3x3 block.
func (mt *Mat4) SetRotationalPart(rotation Mat3) {
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			mt.Data[col*4+row] = rotation.Data[col*3+row]
		}
	}
}

// GetTranslationVector returns the translation held in the last column.
func (mt Mat4) GetTranslationVector() Vec3 {
	return Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}
}

// SetTranslationVector overwrites the translation held in the last column.
func (mt *Mat4) SetTranslationVector(translation Vec3) {
	mt.Data[12], mt.Data[13], mt.Data[14] = translation.X, translation.Y, translation.Z
}

/**
 * @brief Sets the matrix to apply rotation and then translation. The last
 * row is reset to (0, 0, 0, 1).
 */
func (mt *Mat4) SetTransformationMatrix(rotation Mat3, translation Vec3) {
	mt.SetRotationalPart(rotation)
	mt.SetTranslationVector(translation)
	mt.SetRow(3, [4]float32{0, 0, 0, 1})
}

// Transpose swaps rows and columns in place.
func (mt *Mat4) Transpose() {
	for col := 0; col < 4; col++ {
		for row := col + 1; row < 4; row++ {
			mt.Data[col*4+row], mt.Data[row*4+col] = mt.Data[row*4+col], mt.Data[col*4+row]
		}
	}
}

/**
 * @brief Returns a transposed copy of the matrix (rows->columns).
 */
func (mt Mat4) Transposed() Mat4 {
	mt.Transpose()
	return mt
}

// minor returns the determinant of the 3x3 matrix left after removing the
// given row and column.
func (mt Mat4) minor(row, column int) float32 {
	var rows, cols [3]int
	for i, r, c := 0, 0, 0; i < 4; i++ {
		if i != row {
			rows[r] = i
			r++
		}
		if i != column {
			cols[c] = i
			c++
		}
	}
	e := func(r, c int) float32 {
		return mt.Data[cols[c]*4+rows[r]]
	}
	return e(0, 0)*(e(1, 1)*e(2, 2)-e(1, 2)*e(2, 1)) -
		e(0, 1)*(e(1, 0)*e(2, 2)-e(1, 2)*e(2, 0)) +
		e(0, 2)*(e(1, 0)*e(2, 1)-e(1, 1)*e(2, 0))
}

/**
 * @brief Returns the determinant, expanded along the first row into four
 * 3x3 minors with alternating sign.
 */
func (mt Mat4) Determinant() float32 {
	return mt.Data[0]*mt.minor(0, 0) -
		mt.Data[4]*mt.minor(0, 1) +
		mt.Data[8]*mt.minor(0, 2) -
		mt.Data[12]*mt.minor(0, 3)
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 *
 * @param epsilon Determinants within epsilon of zero are treated as singular.
 * @return The inverse and true, or the zero matrix and false if the matrix
 * is singular.
 */
func (mt Mat4) Inverse(epsilon float32) (Mat4, bool) {
	det := mt.Determinant()
	if IsNumberZero(det, epsilon) {
		return Mat4{}, false
	}
	d := 1.0 / det

	out_matrix := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			cofactor := mt.minor(row, col)
			if (row+col)%2 == 1 {
				cofactor = -cofactor
			}
			// The adjugate is the transposed cofactor matrix: this lands at (column=row, row=col).
			out_matrix.Data[row*4+col] = cofactor * d
		}
	}
	return out_matrix, true
}

// Invert inverts the matrix in place. It returns false and leaves the matrix
// untouched if it is singular.
func (mt *Mat4) Invert(epsilon float32) bool {
	inverse, ok := mt.Inverse(epsilon)
	if !ok {
		return false
	}
	*mt = inverse
	return true
}

/**
 * @brief Returns the result of multiplying mt and other. Applying the result
 * to a vector is the same as applying other first and then mt.
 *
 * @param other The matrix on the right hand side.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[i*4+row] * other.Data[col*4+i]
			}
			out_matrix.Data[col*4+row] = sum
		}
	}
	return out_matrix
}

// SetMul stores lhs * rhs in mt.
func (mt *Mat4) SetMul(lhs, rhs Mat4) {
	*mt = lhs.Mul(rhs)
}

// MulMat3 returns mt multiplied by rhs extended to a 4x4 rotation matrix.
func (mt Mat4) MulMat3(rhs Mat3) Mat4 {
	return mt.Mul(NewMat4Transform(rhs, NewVec3Zero()))
}

// Add returns the element-wise sum.
func (mt Mat4) Add(other Mat4) Mat4 {
	for i := range mt.Data {
		mt.Data[i] += other.Data[i]
	}
	return mt
}

// Sub returns the element-wise difference.
func (mt Mat4) Sub(other Mat4) Mat4 {
	for i := range mt.Data {
		mt.Data[i] -= other.Data[i]
	}
	return mt
}

// MulScalar returns every element multiplied by s.
func (mt Mat4) MulScalar(s float32) Mat4 {
	for i := range mt.Data {
		mt.Data[i] *= s
	}
	return mt
}

// DivScalar returns every element divided by s.
func (mt Mat4) DivScalar(s float32) Mat4 {
	return mt.MulScalar(1.0 / s)
}

/**
 * @brief Transforms a position by the matrix, including translation.
 */
func (mt Mat4) TransformPosition(v Vec3) Vec3 {
	return Vec3{
		X: mt.Data[0]*v.X + mt.Data[4]*v.Y + mt.Data[8]*v.Z + mt.Data[12],
		Y: mt.Data[1]*v.X + mt.Data[5]*v.Y + mt.Data[9]*v.Z + mt.Data[13],
		Z: mt.Data[2]*v.X + mt.Data[6]*v.Y + mt.Data[10]*v.Z + mt.Data[14],
	}
}

/**
 * @brief Transforms a direction by the matrix. Translation is ignored.
 */
func (mt Mat4) TransformDirection(v Vec3) Vec3 {
	return Vec3{
		X: mt.Data[0]*v.X + mt.Data[4]*v.Y + mt.Data[8]*v.Z,
		Y: mt.Data[1]*v.X + mt.Data[5]*v.Y + mt.Data[9]*v.Z,
		Z: mt.Data[2]*v.X + mt.Data[6]*v.Y + mt.Data[10]*v.Z,
	}
}

/**
 * @brief Returns the scale applied along each axis by the rotational part.
 */
func (mt Mat4) GetScalingFactors() Vec3 {
	return mt.GetRotationalPart().GetScalingFactors()
}

/**
 * @brief Rescales each basis column of the rotational part to the given
 * length.
 *
 * @return false, leaving the matrix unchanged, if any column has a length
 * within epsilon of zero.
 */
func (mt *Mat4) SetScalingFactors(x, y, z, epsilon float32) bool {
	rotation := mt.GetRotationalPart()
	if !rotation.SetScalingFactors(x, y, z, epsilon) {
		return false
	}
	mt.SetRotationalPart(rotation)
	return true
}

// IsZero reports whether every element is within epsilon of zero.
func (mt Mat4) IsZero(epsilon float32) bool {
	for _, e := range mt.Data {
		if !IsNumberZero(e, epsilon) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether mt is within epsilon of the identity matrix.
func (mt Mat4) IsIdentity(epsilon float32) bool {
	return mt.IsEqual(NewMat4Identity(), epsilon)
}

// IsEqual compares all elements within epsilon.
func (mt Mat4) IsEqual(other Mat4, epsilon float32) bool {
	for i := range mt.Data {
		if !IsNumberEqual(mt.Data[i], other.Data[i], epsilon) {
			return false
		}
	}
	return true
}

// IsIdentical compares all elements for exact equality.
func (mt Mat4) IsIdentical(other Mat4) bool {
	return mt.Data == other.Data
}

// IsValid reports whether every element is finite.
func (mt Mat4) IsValid() bool {
	for _, e := range mt.Data {
		if !IsFinite(e) {
			return false
		}
	}
	return true
}

// IsNaN reports whether any element is NaN.
func (mt Mat4) IsNaN() bool {
	for _, e := range mt.Data {
		if math32.IsNaN(e) {
			return true
		}
	}
	return false
}

/**
 * @brief Returns a forward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Forward() Vec3 {
	forward := Vec3{-mt.Data[2], -mt.Data[6], -mt.Data[10]}
	forward.Normalize()
	return forward
}

/**
 * @brief Returns a backward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Backward() Vec3 {
	backward := Vec3{mt.Data[2], mt.Data[6], mt.Data[10]}
	backward.Normalize()
	return backward
}

/**
 * @brief Returns a upward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Up() Vec3 {
	up := Vec3{mt.Data[1], mt.Data[5], mt.Data[9]}
	up.Normalize()
	return up
}

/**
 * @brief Returns a downward vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Down() Vec3 {
	down := Vec3{-mt.Data[1], -mt.Data[5], -mt.Data[9]}
	down.Normalize()
	return down
}

/**
 * @brief Returns a left vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Left() Vec3 {
	left := Vec3{-mt.Data[0], -mt.Data[4], -mt.Data[8]}
	left.Normalize()
	return left
}

/**
 * @brief Returns a right vector relative to the provided view matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Right() Vec3 {
	right := Vec3{mt.Data[0], mt.Data[4], mt.Data[8]}
	right.Normalize()
	return right
}
