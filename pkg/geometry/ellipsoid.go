package geometry

import (
	"github.com/chewxy/math32"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
)

// Ellipsoid is the axis-aligned surface (x/rx)² + (y/ry)² + (z/rz)² = 1
// in its local frame.
type Ellipsoid struct {
	Radii core.Vec3 // semi-axes (rx, ry, rz)
}

// NewEllipsoid creates a new ellipsoid with the given semi-axes
func NewEllipsoid(radii core.Vec3) Ellipsoid {
	return Ellipsoid{Radii: radii}
}

// Intersect solves the quadratic for the ray scaled into the unit sphere.
// When the origin lies outside and the ray passes through, both crossings
// are reported so light PDFs can fold the exit hit.
func (e Ellipsoid) Intersect(ray core.Ray) (LocalHit, bool) {
	o := ray.Origin.DivideVec(e.Radii)
	d := ray.Direction.DivideVec(e.Radii)

	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return LocalHit{}, false
	}

	sqrtD := math32.Sqrt(discriminant)
	tNear := (-b - sqrtD) / (2 * a)
	tFar := (-b + sqrtD) / (2 * a)

	switch {
	case tNear > 0:
		return LocalHit{
			T:         tNear,
			TFar:      tFar,
			HasFar:    true,
			Normal:    e.normalAt(ray.At(tNear)),
			NormalFar: e.normalAt(ray.At(tFar)),
		}, true
	case tFar > 0:
		return LocalHit{T: tFar, Normal: e.normalAt(ray.At(tFar))}, true
	default:
		return LocalHit{}, false
	}
}

// normalAt returns the gradient of the implicit function at a surface point,
// p / r² componentwise. Unit length only after normalization.
func (e Ellipsoid) normalAt(p core.Vec3) core.Vec3 {
	return p.DivideVec(e.Radii.Square())
}
