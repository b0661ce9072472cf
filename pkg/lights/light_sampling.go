// Package lights samples points on emissive primitives and evaluates the
// matching probability densities. Surface samplers are paired with area-measure
// PDFs; DirectionPDF converts to solid angle along a shadow ray, folding both
// crossings a through-going ray makes with a convex emitter.
package lights

import (
	"github.com/chewxy/math32"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
	"github.com/jmars/go-implicit-pathtracer/pkg/geometry"
)

// SamplePoint draws a point on the surface of an emissive primitive in world
// space. Planes have no finite surface and report false.
func SamplePoint(p *geometry.Primitive, rng *core.Xoroshiro) (core.Vec3, bool) {
	switch shape := p.Shape.(type) {
	case geometry.Box:
		return toWorld(p, sampleBoxSurface(shape, rng)), true
	case geometry.Ellipsoid:
		return toWorld(p, sampleEllipsoidSurface(shape, rng)), true
	default:
		return core.Vec3{}, false
	}
}

// AreaPDF evaluates the surface-area density of SamplePoint at a world-space
// point assumed to lie on the primitive's surface. Planes return zero.
func AreaPDF(p *geometry.Primitive, point core.Vec3) float32 {
	switch shape := p.Shape.(type) {
	case geometry.Box:
		return boxAreaPDF(shape)
	case geometry.Ellipsoid:
		return ellipsoidAreaPDF(shape, toLocal(p, point))
	default:
		return 0
	}
}

// DirectionPDF evaluates the solid-angle density of sampling the primitive's
// surface along the given ray, whose direction must be unit length. Each
// crossing contributes area_pdf · t² / |ω·n|; a ray that pierces the emitter
// sums both the entry and the exit.
func DirectionPDF(p *geometry.Primitive, ray core.Ray) float32 {
	if p.IsPlane() {
		return 0
	}

	hit, ok := p.Intersect(ray)
	if !ok {
		return 0
	}

	pdf := solidAngleTerm(p, ray, hit.T, hit.Normal)
	if hit.HasFar {
		pdf += solidAngleTerm(p, ray, hit.TFar, hit.NormalFar)
	}

	return pdf
}

func solidAngleTerm(p *geometry.Primitive, ray core.Ray, t float32, normal core.Vec3) float32 {
	cos := math32.Abs(ray.Direction.Dot(normal))
	if cos == 0 {
		return 0
	}
	return AreaPDF(p, ray.At(t)) * t * t / cos
}

// sampleBoxSurface picks a face with probability proportional to its area,
// then a uniform point on that face.
func sampleBoxSurface(b geometry.Box, rng *core.Xoroshiro) core.Vec3 {
	h := b.Extents
	wx := h.Y * h.Z
	wy := h.X * h.Z
	wz := h.X * h.Y

	u := 2*rng.Float32() - 1
	v := 2*rng.Float32() - 1
	sign := float32(1)
	if rng.Float32() < 0.5 {
		sign = -1
	}

	pick := rng.Float32() * (wx + wy + wz)
	switch {
	case pick < wx:
		return core.Vec3{X: sign * h.X, Y: u * h.Y, Z: v * h.Z}
	case pick < wx+wy:
		return core.Vec3{X: u * h.X, Y: sign * h.Y, Z: v * h.Z}
	default:
		return core.Vec3{X: u * h.X, Y: v * h.Y, Z: sign * h.Z}
	}
}

// boxAreaPDF is the uniform density over the box's total surface area
func boxAreaPDF(b geometry.Box) float32 {
	h := b.Extents
	return 1 / (8 * (h.Y*h.Z + h.X*h.Z + h.X*h.Y))
}

// sampleEllipsoidSurface maps a uniform sphere direction through the
// semi-axis scaling. The mapping is not uniform over the surface;
// ellipsoidAreaPDF carries the compensating Jacobian.
func sampleEllipsoidSurface(e geometry.Ellipsoid, rng *core.Xoroshiro) core.Vec3 {
	return core.SampleUniformSphere(rng).MultiplyVec(e.Radii)
}

// ellipsoidAreaPDF is the area density of sampleEllipsoidSurface at a local
// surface point: 1 / (4π·√(nx²ry²rz² + rx²ny²rz² + rx²ry²nz²)) with
// n = p/r the preimage on the unit sphere.
func ellipsoidAreaPDF(e geometry.Ellipsoid, local core.Vec3) float32 {
	n := local.DivideVec(e.Radii)
	r := e.Radii.Square()

	jacobian := math32.Sqrt(n.X*n.X*r.Y*r.Z + r.X*n.Y*n.Y*r.Z + r.X*r.Y*n.Z*n.Z)
	return 1 / (4 * math32.Pi * jacobian)
}

func toWorld(p *geometry.Primitive, local core.Vec3) core.Vec3 {
	return p.Position.Add(p.Rotation.Rotate(local))
}

func toLocal(p *geometry.Primitive, world core.Vec3) core.Vec3 {
	return p.Rotation.Conjugate().Rotate(world.Subtract(p.Position))
}
