package scene

import (
	"sort"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
	"github.com/jmars/go-implicit-pathtracer/pkg/geometry"
)

// Camera is a pinhole camera with an explicit, trusted orthonormal basis.
// FovX is the full horizontal field of view in radians.
type Camera struct {
	Position core.Vec3
	Right    core.Vec3
	Up       core.Vec3
	Forward  core.Vec3
	FovX     float32
}

// Scene holds everything needed to render one frame. It is built once by the
// loader and never mutated during rendering; primitives are reordered exactly
// once by FinalizeLights so that emissive primitives occupy a prefix of the
// slice.
type Scene struct {
	Width, Height int

	Background core.Vec3
	Camera     Camera
	Primitives []geometry.Primitive

	RayDepth int
	Samples  int

	// NumLights counts the strictly-emissive prefix of Primitives.
	// NumAreaLights counts the subset with a finite surface (non-planes);
	// when it is zero the integrator cannot sample lights directly and falls
	// back to pure cosine sampling.
	NumLights     int
	NumAreaLights int

	// Seed is the master seed; Rand is the sequential stream mixed from it.
	// Parallel rendering derives additional streams from Seed.
	Seed uint64
	Rand *core.Xoroshiro
}

// SetSeed fixes the master seed and resets the scene's PRNG stream
func (s *Scene) SetSeed(seed uint64) {
	s.Seed = seed
	s.Rand = core.NewXoroshiro(seed)
}

// FinalizeLights sorts emissive primitives to the front of the primitive
// slice, brightest first by squared emission norm, and fixes the light
// counts. Called exactly once after parsing.
func (s *Scene) FinalizeLights() {
	sort.SliceStable(s.Primitives, func(i, j int) bool {
		return s.Primitives[i].Emission.LengthSquared() > s.Primitives[j].Emission.LengthSquared()
	})

	s.NumLights = 0
	s.NumAreaLights = 0
	for i := range s.Primitives {
		if !s.Primitives[i].IsEmissive() {
			break
		}
		s.NumLights++
		if !s.Primitives[i].IsPlane() {
			s.NumAreaLights++
		}
	}
}

// Lights returns the emissive prefix of the primitive slice
func (s *Scene) Lights() []geometry.Primitive {
	return s.Primitives[:s.NumLights]
}

// Intersect finds the nearest primitive hit with t strictly below tMax.
// On equal t the first primitive in iteration order wins.
func (s *Scene) Intersect(ray core.Ray, tMax float32) (geometry.Intersection, *geometry.Primitive, bool) {
	var closest geometry.Intersection
	var winner *geometry.Primitive

	for i := range s.Primitives {
		hit, ok := s.Primitives[i].Intersect(ray)
		if ok && hit.T < tMax {
			tMax = hit.T
			closest = hit
			winner = &s.Primitives[i]
		}
	}

	return closest, winner, winner != nil
}
