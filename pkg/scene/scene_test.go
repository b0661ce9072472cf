package scene

import (
	"testing"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
	"github.com/jmars/go-implicit-pathtracer/pkg/geometry"
)

func TestFinalizeLightsOrdering(t *testing.T) {
	s := &Scene{
		Primitives: []geometry.Primitive{
			{Shape: geometry.NewBox(core.NewVec3(1, 1, 1))},
			{Shape: geometry.NewEllipsoid(core.NewVec3(1, 1, 1)), Emission: core.NewVec3(1, 1, 1)},
			{Shape: geometry.NewPlane(core.NewVec3(0, 1, 0)), Emission: core.NewVec3(10, 10, 10)},
			{Shape: geometry.NewBox(core.NewVec3(2, 2, 2)), Emission: core.NewVec3(5, 5, 5)},
		},
	}
	s.FinalizeLights()

	if s.NumLights != 3 {
		t.Fatalf("NumLights = %d, want 3", s.NumLights)
	}
	if s.NumAreaLights != 2 {
		t.Fatalf("NumAreaLights = %d, want 2", s.NumAreaLights)
	}

	// Brightest first by squared emission norm
	prev := float32(1e30)
	for i := 0; i < s.NumLights; i++ {
		e := s.Primitives[i].Emission.LengthSquared()
		if e > prev {
			t.Errorf("light %d out of order: %v after %v", i, e, prev)
		}
		prev = e
	}
	if s.Primitives[3].IsEmissive() {
		t.Error("non-emissive primitive not at the tail")
	}
}

func TestSceneIntersectNearest(t *testing.T) {
	s := &Scene{
		Primitives: []geometry.Primitive{
			{
				Shape:    geometry.NewEllipsoid(core.NewVec3(1, 1, 1)),
				Position: core.NewVec3(0, 0, 10),
				Rotation: core.IdentityQuaternion(),
			},
			{
				Shape:    geometry.NewEllipsoid(core.NewVec3(1, 1, 1)),
				Position: core.NewVec3(0, 0, 5),
				Rotation: core.IdentityQuaternion(),
			},
		},
	}

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	hit, prim, ok := s.Intersect(ray, float32(1e30))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.T < 3.9 || hit.T > 4.1 {
		t.Errorf("nearest t = %v, want 4", hit.T)
	}
	if prim != &s.Primitives[1] {
		t.Error("winner is not the nearer primitive")
	}
}

func TestSceneIntersectRespectsTMax(t *testing.T) {
	s := &Scene{
		Primitives: []geometry.Primitive{
			{
				Shape:    geometry.NewEllipsoid(core.NewVec3(1, 1, 1)),
				Position: core.NewVec3(0, 0, 10),
				Rotation: core.IdentityQuaternion(),
			},
		},
	}

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	if _, _, ok := s.Intersect(ray, 5); ok {
		t.Error("hit beyond tMax should be rejected")
	}
	if _, _, ok := s.Intersect(ray, 9.0); ok {
		t.Error("tMax bound is strict")
	}
	if _, _, ok := s.Intersect(ray, 9.5); !ok {
		t.Error("hit within tMax missed")
	}
}

func TestSetSeedResetsStream(t *testing.T) {
	s := &Scene{}
	s.SetSeed(5)
	a := s.Rand.Uint64()
	s.SetSeed(5)
	b := s.Rand.Uint64()
	if a != b {
		t.Error("SetSeed did not reset the stream")
	}
	if s.Seed != 5 {
		t.Errorf("Seed = %d", s.Seed)
	}
}
