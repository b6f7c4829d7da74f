package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

/**
 * @brief A 3x3 matrix holding rotation and scale, without translation.
 * Elements are stored column-major: element (column, row) lives at
 * Data[column*3 + row].
 */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float32
}

/**
 * @brief A 4x4 matrix, typically used to represent object transformations.
 * Elements are stored column-major: element (column, row) lives at
 * Data[column*4 + row].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief A quaternion, used to represent rotational orientation.
 * Only unit quaternions describe rotations; call Normalize after
 * writing components directly.
 */
type Quaternion struct {
	X, Y, Z, W float32
}

/**
 * @brief Represents a decomposed transform that maps a point p to
 * Rotation*(p*Scale) + Position. The zero value is NOT the identity,
 * use NewTransformIdentity.
 */
type Transform struct {
	/** @brief The translation. */
	Position Vec3
	/** @brief The rotation, expected to be of unit length. */
	Rotation Quaternion
	/** @brief The non-uniform scale. */
	Scale Vec3
}

/**
 * @brief A color in linear space. Values are not clamped; components
 * above 1 are valid HDR intensities.
 */
type Color struct {
	R, G, B, A float32
}
