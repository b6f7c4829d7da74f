package math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// ------------------------------------------
// Matrix 3x3
// ------------------------------------------

func checkIndex(kind string, index, size int) {
	if index < 0 || index >= size {
		panic(fmt.Sprintf("math: %s index %d out of range [0, %d)", kind, index, size))
	}
}

/**
 * @brief Creates a matrix from its elements given in reading order, row by row:
 *
 * {
 *   {c1r1, c2r1, c3r1},
 *   {c1r2, c2r2, c3r2},
 *   {c1r3, c2r3, c3r3}
 * }
 */
func NewMat3(c1r1, c2r1, c3r1, c1r2, c2r2, c3r2, c1r3, c2r3, c3r3 float32) Mat3 {
	out_matrix := Mat3{}
	out_matrix.SetElements(c1r1, c2r1, c3r1, c1r2, c2r2, c3r2, c1r3, c2r3, c3r3)
	return out_matrix
}

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat3Identity() Mat3 {
	out_matrix := Mat3{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[4] = 1.0
	out_matrix.Data[8] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a matrix with all elements set to zero.
 */
func NewMat3Zero() Mat3 {
	return Mat3{}
}

// NewMat3FromArray creates a matrix from a flat array in the given order.
func NewMat3FromArray(data [9]float32, columnMajor bool) Mat3 {
	out_matrix := Mat3{}
	out_matrix.SetFromArray(data, columnMajor)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the x axis.
 *
 * @param angle_radians The angle in radians.
 */
func NewMat3RotationX(angle_radians float32) Mat3 {
	out_matrix := Mat3{}
	out_matrix.SetRotationMatrixX(angle_radians)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the y axis.
 *
 * @param angle_radians The angle in radians.
 */
func NewMat3RotationY(angle_radians float32) Mat3 {
	out_matrix := Mat3{}
	out_matrix.SetRotationMatrixY(angle_radians)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the z axis.
 *
 * @param angle_radians The angle in radians.
 */
func NewMat3RotationZ(angle_radians float32) Mat3 {
	out_matrix := Mat3{}
	out_matrix.SetRotationMatrixZ(angle_radians)
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around an arbitrary axis.
 *
 * @param axis The normalized rotation axis.
 * @param angle_radians The angle in radians.
 */
func NewMat3RotationAxis(axis Vec3, angle_radians float32) Mat3 {
	out_matrix := Mat3{}
	out_matrix.SetRotationMatrix(axis, angle_radians)
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat3Scale(scale Vec3) Mat3 {
	out_matrix := Mat3{}
	out_matrix.SetScalingMatrix(scale)
	return out_matrix
}

// SetElements overwrites all elements, given row by row.
func (mt *Mat3) SetElements(c1r1, c2r1, c3r1, c1r2, c2r2, c3r2, c1r3, c2r3, c3r3 float32) {
	mt.Data[0], mt.Data[3], mt.Data[6] = c1r1, c2r1, c3r1
	mt.Data[1], mt.Data[4], mt.Data[7] = c1r2, c2r2, c3r2
	mt.Data[2], mt.Data[5], mt.Data[8] = c1r3, c2r3, c3r3
}

// SetIdentity resets the matrix to identity.
func (mt *Mat3) SetIdentity() {
	*mt = NewMat3Identity()
}

// SetZero sets every element to zero.
func (mt *Mat3) SetZero() {
	*mt = Mat3{}
}

/**
 * @brief Copies data into the matrix. When columnMajor is false the array is
 * read row by row.
 */
func (mt *Mat3) SetFromArray(data [9]float32, columnMajor bool) {
	if columnMajor {
		mt.Data = data
		return
	}
	for i := 0; i < 9; i++ {
		mt.Data[(i%3)*3+i/3] = data[i]
	}
}

/**
 * @brief Returns the elements as a flat array, column by column when
 * columnMajor is true, row by row otherwise.
 */
func (mt Mat3) GetAsArray(columnMajor bool) [9]float32 {
	if columnMajor {
		return mt.Data
	}
	var out [9]float32
	for i := 0; i < 9; i++ {
		out[i] = mt.Data[(i%3)*3+i/3]
	}
	return out
}

// GetElement returns the element at the given column and row.
func (mt Mat3) GetElement(column, row int) float32 {
	checkIndex("column", column, 3)
	checkIndex("row", row, 3)
	return mt.Data[column*3+row]
}

// SetElement writes the element at the given column and row.
func (mt *Mat3) SetElement(column, row int, value float32) {
	checkIndex("column", column, 3)
	checkIndex("row", row, 3)
	mt.Data[column*3+row] = value
}

// GetRow returns the row with the given index.
func (mt Mat3) GetRow(row int) [3]float32 {
	checkIndex("row", row, 3)
	return [3]float32{mt.Data[row], mt.Data[3+row], mt.Data[6+row]}
}

// SetRow writes the row with the given index.
func (mt *Mat3) SetRow(row int, values [3]float32) {
	checkIndex("row", row, 3)
	mt.Data[row], mt.Data[3+row], mt.Data[6+row] = values[0], values[1], values[2]
}

// GetColumn returns the column with the given index.
func (mt Mat3) GetColumn(column int) [3]float32 {
	checkIndex("column", column, 3)
	return [3]float32{mt.Data[column*3], mt.Data[column*3+1], mt.Data[column*3+2]}
}

// SetColumn writes the column with the given index.
func (mt *Mat3) SetColumn(column int, values [3]float32) {
	checkIndex("column", column, 3)
	mt.Data[column*3], mt.Data[column*3+1], mt.Data[column*3+2] = values[0], values[1], values[2]
}

// GetDiagonal returns the elements of the main diagonal.
func (mt Mat3) GetDiagonal() [3]float32 {
	return [3]float32{mt.Data[0], mt.Data[4], mt.Data[8]}
}

// SetDiagonal writes the main diagonal.
func (mt *Mat3) SetDiagonal(values [3]float32) {
	mt.Data[0], mt.Data[4], mt.Data[8] = values[0], values[1], values[2]
}

/**
 * @brief Sets the matrix to a rotation around the x axis.
 */
func (mt *Mat3) SetRotationMatrixX(angle_radians float32) {
	c := math32.Cos(angle_radians)
	s := math32.Sin(angle_radians)
	mt.SetElements(
		1, 0, 0,
		0, c, -s,
		0, s, c,
	)
}

/**
 * @brief Sets the matrix to a rotation around the y axis.
 */
func (mt *Mat3) SetRotationMatrixY(angle_radians float32) {
	c := math32.Cos(angle_radians)
	s := math32.Sin(angle_radians)
	mt.SetElements(
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	)
}

/**
 * @brief Sets the matrix to a rotation around the z axis.
 */
func (mt *Mat3) SetRotationMatrixZ(angle_radians float32) {
	c := math32.Cos(angle_radians)
	s := math32.Sin(angle_radians)
	mt.SetElements(
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	)
}

/**
 * @brief Sets the matrix to a rotation of angle_radians around axis
 * (Rodrigues' rotation formula).
 *
 * @param axis The rotation axis. Must be normalized.
 * @param angle_radians The angle in radians.
 */
func (mt *Mat3) SetRotationMatrix(axis Vec3, angle_radians float32) {
	c := math32.Cos(angle_radians)
	s := math32.Sin(angle_radians)
	oneminuscos := 1 - c

	xy := axis.X * axis.Y
	xz := axis.X * axis.Z
	yz := axis.Y * axis.Z

	mt.Data[0] = c + oneminuscos*axis.X*axis.X
	mt.Data[1] = oneminuscos*xy + axis.Z*s
	mt.Data[2] = oneminuscos*xz - axis.Y*s

	mt.Data[3] = oneminuscos*xy - axis.Z*s
	mt.Data[4] = c + oneminuscos*axis.Y*axis.Y
	mt.Data[5] = oneminuscos*yz + axis.X*s

	mt.Data[6] = oneminuscos*xz + axis.Y*s
	mt.Data[7] = oneminuscos*yz - axis.X*s
	mt.Data[8] = c + oneminuscos*axis.Z*axis.Z
}

// SetScalingMatrix sets the matrix to a pure scale.
func (mt *Mat3) SetScalingMatrix(scale Vec3) {
	mt.SetElements(
		scale.X, 0, 0,
		0, scale.Y, 0,
		0, 0, scale.Z,
	)
}

// Transpose swaps rows and columns in place.
func (mt *Mat3) Transpose() {
	mt.Data[1], mt.Data[3] = mt.Data[3], mt.Data[1]
	mt.Data[2], mt.Data[6] = mt.Data[6], mt.Data[2]
	mt.Data[5], mt.Data[7] = mt.Data[7], mt.Data[5]
}

/**
 * @brief Returns a transposed copy of the matrix (rows->columns).
 */
func (mt Mat3) Transposed() Mat3 {
	mt.Transpose()
	return mt
}

/**
 * @brief Returns the determinant, expanded along the first row.
 */
func (mt Mat3) Determinant() float32 {
	m := mt.Data
	return m[0]*(m[4]*m[8]-m[7]*m[5]) -
		m[3]*(m[1]*m[8]-m[7]*m[2]) +
		m[6]*(m[1]*m[5]-m[4]*m[2])
}

/**
 * @brief Returns the inverse of the matrix.
 *
 * @param epsilon Determinants within epsilon of zero are treated as singular.
 * @return The inverse and true, or the zero matrix and false if the matrix
 * is singular.
 */
func (mt Mat3) Inverse(epsilon float32) (Mat3, bool) {
	det := mt.Determinant()
	if IsNumberZero(det, epsilon) {
		return Mat3{}, false
	}
	d := 1.0 / det

	// m<row><column>
	m00, m01, m02 := mt.Data[0], mt.Data[3], mt.Data[6]
	m10, m11, m12 := mt.Data[1], mt.Data[4], mt.Data[7]
	m20, m21, m22 := mt.Data[2], mt.Data[5], mt.Data[8]

	return NewMat3(
		d*(m11*m22-m12*m21), d*(m02*m21-m01*m22), d*(m01*m12-m02*m11),
		d*(m12*m20-m10*m22), d*(m00*m22-m02*m20), d*(m02*m10-m00*m12),
		d*(m10*m21-m11*m20), d*(m01*m20-m00*m21), d*(m00*m11-m01*m10),
	), true
}

// Invert inverts the matrix in place. It returns false and leaves the matrix
// untouched if it is singular.
func (mt *Mat3) Invert(epsilon float32) bool {
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
 */
func (mt Mat3) Mul(other Mat3) Mat3 {
	out_matrix := Mat3{}
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			sum := float32(0)
			for i := 0; i < 3; i++ {
				sum += mt.Data[i*3+row] * other.Data[col*3+i]
			}
			out_matrix.Data[col*3+row] = sum
		}
	}
	return out_matrix
}

// SetMul stores lhs * rhs in mt.
func (mt *Mat3) SetMul(lhs, rhs Mat3) {
	*mt = lhs.Mul(rhs)
}

// Add returns the element-wise sum.
func (mt Mat3) Add(other Mat3) Mat3 {
	for i := range mt.Data {
		mt.Data[i] += other.Data[i]
	}
	return mt
}

// Sub returns the element-wise difference.
func (mt Mat3) Sub(other Mat3) Mat3 {
	for i := range mt.Data {
		mt.Data[i] -= other.Data[i]
	}
	return mt
}

// MulScalar returns every element multiplied by s.
func (mt Mat3) MulScalar(s float32) Mat3 {
	for i := range mt.Data {
		mt.Data[i] *= s
	}
	return mt
}

// DivScalar returns every element divided by s.
func (mt Mat3) DivScalar(s float32) Mat3 {
	return mt.MulScalar(1.0 / s)
}

/**
 * @brief Transforms a direction by the matrix.
 */
func (mt Mat3) TransformDirection(v Vec3) Vec3 {
	return Vec3{
		X: mt.Data[0]*v.X + mt.Data[3]*v.Y + mt.Data[6]*v.Z,
		Y: mt.Data[1]*v.X + mt.Data[4]*v.Y + mt.Data[7]*v.Z,
		Z: mt.Data[2]*v.X + mt.Data[5]*v.Y + mt.Data[8]*v.Z,
	}
}

// MulVec3 is an alias of TransformDirection.
func (mt Mat3) MulVec3(v Vec3) Vec3 {
	return mt.TransformDirection(v)
}

/**
 * @brief Returns the length of each basis column, which is the scale the
 * matrix applies along each axis.
 */
func (mt Mat3) GetScalingFactors() Vec3 {
	return Vec3{
		X: Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}.Length(),
		Y: Vec3{mt.Data[3], mt.Data[4], mt.Data[5]}.Length(),
		Z: Vec3{mt.Data[6], mt.Data[7], mt.Data[8]}.Length(),
	}
}

/**
 * @brief Rescales each basis column to the given length.
 *
 * @return false, leaving the matrix unchanged, if any column has a length
 * within epsilon of zero.
 */
func (mt *Mat3) SetScalingFactors(x, y, z, epsilon float32) bool {
	tx := Vec3{mt.Data[0], mt.Data[1], mt.Data[2]}
	ty := Vec3{mt.Data[3], mt.Data[4], mt.Data[5]}
	tz := Vec3{mt.Data[6], mt.Data[7], mt.Data[8]}

	if !tx.SetLength(x, epsilon) || !ty.SetLength(y, epsilon) || !tz.SetLength(z, epsilon) {
		return false
	}

	mt.SetColumn(0, [3]float32{tx.X, tx.Y, tx.Z})
	mt.SetColumn(1, [3]float32{ty.X, ty.Y, ty.Z})
	mt.SetColumn(2, [3]float32{tz.X, tz.Y, tz.Z})
	return true
}

// IsZero reports whether every element is within epsilon of zero.
func (mt Mat3) IsZero(epsilon float32) bool {
	for _, e := range mt.Data {
		if !IsNumberZero(e, epsilon) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether mt is within epsilon of the identity matrix.
func (mt Mat3) IsIdentity(epsilon float32) bool {
	return mt.IsEqual(NewMat3Identity(), epsilon)
}

// IsEqual compares all elements within epsilon.
func (mt Mat3) IsEqual(other Mat3, epsilon float32) bool {
	for i := range mt.Data {
		if !IsNumberEqual(mt.Data[i], other.Data[i], epsilon) {
			return false
		}
	}
	return true
}

// IsIdentical compares all elements for exact equality.
func (mt Mat3) IsIdentical(other Mat3) bool {
	return mt.Data == other.Data
}

// IsValid reports whether every element is finite.
func (mt Mat3) IsValid() bool {
	for _, e := range mt.Data {
		if !IsFinite(e) {
			return false
		}
	}
	return true
}

// IsNaN reports whether any element is NaN.
func (mt Mat3) IsNaN() bool {
	for _, e := range mt.Data {
		if math32.IsNaN(e) {
			return true
		}
	}
	return false
}
