package geometry

import (
	"testing"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
)

func TestBoxIntersectFromOutside(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1))

	hit, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approxEqual(hit.T, 4, 1e-5) {
		t.Errorf("near t = %v, want 4", hit.T)
	}
	if !hit.HasFar {
		t.Fatal("through-going ray must report the exit hit")
	}
	if !approxEqual(hit.TFar, 6, 1e-5) {
		t.Errorf("far t = %v, want 6", hit.TFar)
	}
}

func TestBoxIntersectFromInside(t *testing.T) {
	box := NewBox(core.NewVec3(2, 3, 4))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))

	hit, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit from inside")
	}
	if !approxEqual(hit.T, 3, 1e-5) {
		t.Errorf("t = %v, want 3", hit.T)
	}
	if hit.HasFar {
		t.Error("origin inside must not report a far hit")
	}
}

func TestBoxMiss(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1))

	rays := []core.Ray{
		core.NewRay(core.NewVec3(0, 3, -5), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1)),
		core.NewRay(core.NewVec3(-3, -3, -3), core.NewVec3(0, 0, 1)),
	}
	for i, ray := range rays {
		if _, ok := box.Intersect(ray); ok {
			t.Errorf("ray %d should miss", i)
		}
	}
}

func TestBoxAxisAlignedRay(t *testing.T) {
	// Direction components of zero divide to infinities in the slab test
	box := NewBox(core.NewVec3(1, 2, 3))
	ray := core.NewRay(core.NewVec3(0.5, -10, 0.5), core.NewVec3(0, 1, 0))

	hit, ok := box.Intersect(ray)
	if !ok {
		t.Fatal("expected a hit")
	}
	if !approxEqual(hit.T, 8, 1e-5) {
		t.Errorf("t = %v, want 8", hit.T)
	}
}

func TestBoxNormalAxis(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1))

	tests := []struct {
		name string
		ray  core.Ray
		want core.Vec3
	}{
		{"front", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), core.NewVec3(0, 0, -1)},
		{"top", core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0)), core.NewVec3(0, 1, 0)},
		{"left", core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)), core.NewVec3(-1, 0, 0)},
	}

	for _, tc := range tests {
		hit, ok := box.Intersect(tc.ray)
		if !ok {
			t.Fatalf("%s: expected a hit", tc.name)
		}
		n := hit.Normal.Normalize()
		if !approxEqual(n.X, tc.want.X, 1e-5) ||
			!approxEqual(n.Y, tc.want.Y, 1e-5) ||
			!approxEqual(n.Z, tc.want.Z, 1e-5) {
			t.Errorf("%s: normal = %v, want %v", tc.name, n, tc.want)
		}
	}
}
