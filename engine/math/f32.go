package math

import (
	"golang.org/x/image/math/f32"
)

// Conversions to and from the array types of golang.org/x/image/math/f32.
// f32.Mat3 and f32.Mat4 are row-major.

func NewVec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{v[0], v[1]}
}

func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

func NewVec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{v[0], v[1], v[2]}
}

func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// NewQuatFromF32 reads a quaternion stored as (x, y, z, w).
func NewQuatFromF32(v f32.Vec4) Quaternion {
	return Quaternion{v[0], v[1], v[2], v[3]}
}

// F32 returns the quaternion as (x, y, z, w).
func (q Quaternion) F32() f32.Vec4 {
	return f32.Vec4{q.X, q.Y, q.Z, q.W}
}

func NewMat3FromF32(m f32.Mat3) Mat3 {
	return NewMat3FromArray(m, false)
}

func (mt Mat3) F32() f32.Mat3 {
	return mt.GetAsArray(false)
}

func NewMat4FromF32(m f32.Mat4) Mat4 {
	return NewMat4FromArray(m, false)
}

func (mt Mat4) F32() f32.Mat4 {
	return mt.GetAsArray(false)
}

// F32 returns the linear color channels as (r, g, b, a).
func (c Color) F32() f32.Vec4 {
	return f32.Vec4{c.R, c.G, c.B, c.A}
}
