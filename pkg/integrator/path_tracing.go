// Package integrator implements the recursive Monte Carlo path tracing
// estimator over diffuse, metallic and dielectric surfaces, with multiple
// importance sampling between cosine-weighted BSDF sampling and direct
// sampling of emissive primitives.
package integrator

import (
	"github.com/chewxy/math32"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
	"github.com/jmars/go-implicit-pathtracer/pkg/geometry"
	"github.com/jmars/go-implicit-pathtracer/pkg/lights"
	"github.com/jmars/go-implicit-pathtracer/pkg/scene"
)

// epsilon is the self-intersection offset along the signed surface normal
const epsilon = 1e-4

// PathTracer estimates incoming radiance for rays in a scene
type PathTracer struct {
	scene *scene.Scene
}

// NewPathTracer creates a path tracer for the given scene
func NewPathTracer(s *scene.Scene) *PathTracer {
	return &PathTracer{scene: s}
}

// Trace returns the radiance estimate for a ray. Depth counts the current
// bounce starting at 1 for camera rays; recursion stops past the scene's ray
// depth. The direction must be unit length.
func (pt *PathTracer) Trace(ray core.Ray, depth int, rng *core.Xoroshiro) core.Vec3 {
	if depth > pt.scene.RayDepth {
		return core.Vec3{}
	}

	hit, prim, ok := pt.scene.Intersect(ray, math32.Inf(1))
	if !ok {
		return pt.scene.Background
	}

	point := ray.At(hit.T)

	switch prim.Surface {
	case geometry.Metallic:
		return pt.traceMetallic(ray, point, hit, prim, depth, rng)
	case geometry.Dielectric:
		return pt.traceDielectric(ray, point, hit, prim, depth, rng)
	default:
		return pt.traceDiffuse(point, hit, prim, depth, rng)
	}
}

// traceDiffuse mixes cosine-weighted hemisphere sampling with direct light
// sampling at equal weight, dividing by the combined solid-angle PDF so the
// estimator stays unbiased regardless of which strategy produced the
// direction.
func (pt *PathTracer) traceDiffuse(point core.Vec3, hit geometry.Intersection, prim *geometry.Primitive, depth int, rng *core.Xoroshiro) core.Vec3 {
	s := pt.scene
	normal := hit.Normal

	var omega core.Vec3
	if s.NumAreaLights == 0 || rng.Float32() < 0.5 {
		omega = core.SampleCosineHemisphere(normal, rng)
	} else {
		omega = pt.sampleLightDirection(point, rng)
	}

	origin := point.Add(normal.Multiply(epsilon))

	pdf := core.CosineHemispherePDF(omega, normal)
	if s.NumAreaLights > 0 {
		pdf *= 0.5
		weight := 1 / (2 * float32(s.NumLights))
		shadow := core.NewRay(origin, omega)
		for i := range s.Lights() {
			pdf += weight * lights.DirectionPDF(&s.Primitives[i], shadow)
		}
	}
	if pdf == 0 {
		return prim.Emission
	}

	incoming := pt.Trace(core.NewRay(origin, omega), depth+1, rng)

	cos := math32.Max(omega.Dot(normal), 0)
	return prim.Emission.Add(prim.Color.MultiplyVec(incoming).Multiply(cos / (math32.Pi * pdf)))
}

// sampleLightDirection picks a uniformly random emissive primitive and a
// point on its surface. Planes cannot be sampled by area and are rerolled;
// the caller guarantees at least one sampleable light exists.
func (pt *PathTracer) sampleLightDirection(point core.Vec3, rng *core.Xoroshiro) core.Vec3 {
	s := pt.scene
	for {
		light := &s.Primitives[rng.Uint32n(uint32(s.NumLights-1))]
		target, ok := lights.SamplePoint(light, rng)
		if ok {
			return target.Subtract(point).Normalize()
		}
	}
}

// traceMetallic mirrors the incident direction about the normal and tints
// the reflected radiance by the albedo.
func (pt *PathTracer) traceMetallic(ray core.Ray, point core.Vec3, hit geometry.Intersection, prim *geometry.Primitive, depth int, rng *core.Xoroshiro) core.Vec3 {
	reflected := ray.Direction.Reflect(hit.Normal)
	origin := point.Add(hit.Normal.Multiply(epsilon))

	incoming := pt.Trace(core.NewRay(origin, reflected), depth+1, rng)
	return prim.Emission.Add(incoming.MultiplyVec(prim.Color))
}

// traceDielectric splits between reflection and refraction by the Schlick
// Fresnel approximation. Total internal reflection forces the reflected
// branch. The albedo attenuates only the outer-to-inner refraction leg.
func (pt *PathTracer) traceDielectric(ray core.Ray, point core.Vec3, hit geometry.Intersection, prim *geometry.Primitive, depth int, rng *core.Xoroshiro) core.Vec3 {
	eta := prim.IOR
	if !hit.Inner {
		eta = 1 / prim.IOR
	}

	cos1 := math32.Min(hit.Normal.Dot(ray.Direction.Negate()), 1)
	sin2 := eta * math32.Sqrt(1-cos1*cos1)

	if sin2 > 1 {
		return prim.Emission.Add(pt.traceReflected(ray, point, hit, depth, rng))
	}

	r0 := (eta - 1) / (eta + 1)
	r0 *= r0
	reflectance := r0 + (1-r0)*math32.Pow(1-cos1, 5)

	if rng.Float32() < reflectance {
		return prim.Emission.Add(pt.traceReflected(ray, point, hit, depth, rng))
	}

	cos2 := math32.Sqrt(1 - sin2*sin2)
	refracted := ray.Direction.Multiply(eta).Add(hit.Normal.Multiply(eta*cos1 - cos2)).Normalize()
	origin := point.Subtract(hit.Normal.Multiply(epsilon))

	incoming := pt.Trace(core.NewRay(origin, refracted), depth+1, rng)
	if !hit.Inner {
		incoming = incoming.MultiplyVec(prim.Color)
	}

	return prim.Emission.Add(incoming)
}

func (pt *PathTracer) traceReflected(ray core.Ray, point core.Vec3, hit geometry.Intersection, depth int, rng *core.Xoroshiro) core.Vec3 {
	reflected := ray.Direction.Reflect(hit.Normal)
	origin := point.Add(hit.Normal.Multiply(epsilon))
	return pt.Trace(core.NewRay(origin, reflected), depth+1, rng)
}
