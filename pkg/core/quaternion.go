package core

import (
	"github.com/chewxy/math32"
)

// Quaternion represents a rotation as a unit quaternion (x, y, z, w).
// The identity rotation is (0, 0, 0, 1).
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion creates a new quaternion
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{X: x, Y: y, Z: z, W: w}
}

// IdentityQuaternion returns the identity rotation
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle creates a rotation of angle radians around a unit axis
func QuaternionFromAxisAngle(axis Vec3, angle float32) Quaternion {
	sin := math32.Sin(angle * 0.5)
	return Quaternion{
		X: axis.X * sin,
		Y: axis.Y * sin,
		Z: axis.Z * sin,
		W: math32.Cos(angle * 0.5),
	}
}

// vec returns the vector part of the quaternion
func (q Quaternion) vec() Vec3 {
	return Vec3{q.X, q.Y, q.Z}
}

// Conjugate returns the inverse rotation for a unit quaternion
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Multiply composes two rotations. Not commutative.
func (q Quaternion) Multiply(r Quaternion) Quaternion {
	qv, rv := q.vec(), r.vec()
	v := qv.Cross(rv).Add(rv.Multiply(q.W)).Add(qv.Multiply(r.W))
	return Quaternion{
		X: v.X,
		Y: v.Y,
		Z: v.Z,
		W: q.W*r.W - qv.Dot(rv),
	}
}

// Rotate rotates a vector by the rotation this quaternion represents.
// v' = v + 2*cross(q.xyz, cross(q.xyz, v) + w*v)
func (q Quaternion) Rotate(v Vec3) Vec3 {
	qv := q.vec()
	return v.Add(qv.Cross(qv.Cross(v).Add(v.Multiply(q.W))).Multiply(2))
}

// Length returns the quaternion's norm
func (q Quaternion) Length() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns the unit quaternion with the same orientation
func (q Quaternion) Normalize() Quaternion {
	length := q.Length()
	if length == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{q.X / length, q.Y / length, q.Z / length, q.W / length}
}
