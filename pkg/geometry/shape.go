package geometry

import (
	"github.com/jmars/go-implicit-pathtracer/pkg/core"
)

// LocalHit describes a ray/shape intersection in the shape's local frame.
// Normals are the raw outward normals of the implicit surface; they are
// rotated to world space, normalized and viewer-faced by Primitive.Intersect.
type LocalHit struct {
	T         float32   // near hit parameter, > 0
	TFar      float32   // far hit parameter when the ray passes through
	HasFar    bool      // TFar is valid (origin outside a closed shape)
	Normal    core.Vec3 // outward normal at the near hit
	NormalFar core.Vec3 // outward normal at the far hit
}

// Shape is an implicit surface intersected in its own local frame
type Shape interface {
	// Intersect finds the nearest positive hit of the local-frame ray.
	Intersect(ray core.Ray) (LocalHit, bool)
}
