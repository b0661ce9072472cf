package geometry

import (
	"github.com/jmars/go-implicit-pathtracer/pkg/core"
)

// Plane is the infinite plane n·p = 0 in its local frame. The normal does
// not need to be unit length.
type Plane struct {
	Normal core.Vec3
}

// NewPlane creates a new plane with the given object-space normal
func NewPlane(normal core.Vec3) Plane {
	return Plane{Normal: normal}
}

// Intersect finds the single crossing of the ray with the plane.
// A ray parallel to the plane divides by zero. A NaN or negative infinite
// parameter is rejected by the t > 0 guard; when the origin lies on the
// negative side the parameter is +Inf and is reported as a hit at infinity.
func (p Plane) Intersect(ray core.Ray) (LocalHit, bool) {
	t := -ray.Origin.Dot(p.Normal) / ray.Direction.Dot(p.Normal)
	if !(t > 0) {
		return LocalHit{}, false
	}

	return LocalHit{T: t, Normal: p.Normal}, true
}
