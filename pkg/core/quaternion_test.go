package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestQuaternionIdentity(t *testing.T) {
	v := NewVec3(1, 2, 3)
	if got := IdentityQuaternion().Rotate(v); !vecApproxEqual(got, v, 1e-6) {
		t.Errorf("identity rotation moved %v to %v", v, got)
	}
}

func TestQuaternionAxisAngle(t *testing.T) {
	// 90 degrees around Z maps +X to +Y
	q := QuaternionFromAxisAngle(NewVec3(0, 0, 1), math32.Pi/2)
	got := q.Rotate(NewVec3(1, 0, 0))
	if !vecApproxEqual(got, NewVec3(0, 1, 0), 1e-5) {
		t.Errorf("rotated +X = %v, want +Y", got)
	}
}

func TestQuaternionConjugateRoundTrip(t *testing.T) {
	quaternions := []Quaternion{
		QuaternionFromAxisAngle(NewVec3(0, 0, 1), 0.73),
		QuaternionFromAxisAngle(NewVec3(1, 0, 0), -2.1),
		QuaternionFromAxisAngle(NewVec3(1, 2, -1).Normalize(), 1.3),
	}
	vectors := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(-2, 3, 0.5),
		NewVec3(0.1, -0.1, 7),
	}

	for _, q := range quaternions {
		for _, v := range vectors {
			got := q.Rotate(q.Conjugate().Rotate(v))
			if !vecApproxEqual(got, v, 1e-5) {
				t.Errorf("rotate(rotate(%v, conj(%v)), q) = %v", v, q, got)
			}
		}
	}
}

func TestQuaternionRotatePreservesLength(t *testing.T) {
	q := QuaternionFromAxisAngle(NewVec3(1, 1, 0).Normalize(), 0.9)
	v := NewVec3(2, -1, 4)

	if got := q.Rotate(v).Length(); !approxEqual(got, v.Length(), 1e-5) {
		t.Errorf("rotation changed length from %v to %v", v.Length(), got)
	}
}

func TestQuaternionMultiplyComposes(t *testing.T) {
	qa := QuaternionFromAxisAngle(NewVec3(0, 0, 1), math32.Pi/2)
	qb := QuaternionFromAxisAngle(NewVec3(1, 0, 0), math32.Pi/2)
	v := NewVec3(0, 1, 0)

	composed := qa.Multiply(qb).Rotate(v)
	sequential := qa.Rotate(qb.Rotate(v))
	if !vecApproxEqual(composed, sequential, 1e-5) {
		t.Errorf("composed rotation %v != sequential %v", composed, sequential)
	}
}

func TestQuaternionNormalize(t *testing.T) {
	q := NewQuaternion(1, 2, 3, 4).Normalize()
	if !approxEqual(q.Length(), 1, 1e-6) {
		t.Errorf("normalized length = %v", q.Length())
	}
}
