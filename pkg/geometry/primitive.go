package geometry

import (
	"github.com/jmars/go-implicit-pathtracer/pkg/core"
)

// SurfaceKind selects the scattering model of a primitive
type SurfaceKind int

const (
	// Diffuse is a Lambertian surface
	Diffuse SurfaceKind = iota
	// Metallic is a perfect mirror tinted by albedo
	Metallic
	// Dielectric is a transparent surface with an index of refraction
	Dielectric
)

// Primitive is a posed shape with its surface attributes. The world pose is
// world = position + rotate(local, rotation); rays are intersected in the
// local frame via the inverse transform.
type Primitive struct {
	Shape    Shape
	Position core.Vec3
	Rotation core.Quaternion
	Color    core.Vec3 // albedo
	Emission core.Vec3
	Surface  SurfaceKind
	IOR      float32
}

// Intersection is a world-frame hit. Normal is unit length and faces the
// viewer; Inner records whether the raw outward normal was flipped to get
// there. TFar and NormalFar report the exit crossing of a through-going ray
// with a closed shape; NormalFar keeps its outward orientation.
type Intersection struct {
	T         float32
	TFar      float32
	HasFar    bool
	Normal    core.Vec3
	NormalFar core.Vec3
	Inner     bool
}

// IsEmissive reports whether the primitive emits light
func (p *Primitive) IsEmissive() bool {
	return !p.Emission.IsZero()
}

// IsPlane reports whether the primitive's shape is a plane. Planes have no
// finite surface to sample, so light sampling skips them.
func (p *Primitive) IsPlane() bool {
	_, ok := p.Shape.(Plane)
	return ok
}

// ToLocal transforms a world-frame ray into the primitive's local frame
func (p *Primitive) ToLocal(ray core.Ray) core.Ray {
	inv := p.Rotation.Conjugate()
	return core.Ray{
		Origin:    inv.Rotate(ray.Origin.Subtract(p.Position)),
		Direction: inv.Rotate(ray.Direction),
	}
}

// Intersect tests the world-frame ray against the primitive. Returned
// normals are rotated back to world space and normalized; the near normal is
// flipped toward the viewer when the ray strikes the inside face.
func (p *Primitive) Intersect(ray core.Ray) (Intersection, bool) {
	local, ok := p.Shape.Intersect(p.ToLocal(ray))
	if !ok {
		return Intersection{}, false
	}

	hit := Intersection{
		T:      local.T,
		TFar:   local.TFar,
		HasFar: local.HasFar,
		Normal: p.Rotation.Rotate(local.Normal).Normalize(),
	}
	if local.HasFar {
		hit.NormalFar = p.Rotation.Rotate(local.NormalFar).Normalize()
	}

	if hit.Normal.Dot(ray.Direction) > 0 {
		hit.Normal = hit.Normal.Negate()
		hit.Inner = true
	}

	return hit, true
}
