package geometry

import (
	"github.com/chewxy/math32"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
)

// Box is the axis-aligned box |x| <= hx, |y| <= hy, |z| <= hz in its
// local frame.
type Box struct {
	Extents core.Vec3 // half-extents (hx, hy, hz)
}

// NewBox creates a new box with the given half-extents
func NewBox(extents core.Vec3) Box {
	return Box{Extents: extents}
}

// Intersect runs the slab test against the three axis intervals.
// Division by a zero direction component yields infinities that the
// min/max interval arithmetic handles.
func (b Box) Intersect(ray core.Ray) (LocalHit, bool) {
	t1 := b.Extents.Negate().Subtract(ray.Origin).DivideVec(ray.Direction)
	t2 := b.Extents.Subtract(ray.Origin).DivideVec(ray.Direction)

	tMin := core.MinVec(t1, t2)
	tMax := core.MaxVec(t1, t2)

	intervalMin := tMin.MaxComponent()
	intervalMax := tMax.MinComponent()
	if intervalMin > intervalMax {
		return LocalHit{}, false
	}

	switch {
	case intervalMin > 0:
		return LocalHit{
			T:         intervalMin,
			TFar:      intervalMax,
			HasFar:    true,
			Normal:    b.normalAt(ray.At(intervalMin)),
			NormalFar: b.normalAt(ray.At(intervalMax)),
		}, true
	case intervalMax > 0:
		return LocalHit{T: intervalMax, Normal: b.normalAt(ray.At(intervalMax))}, true
	default:
		return LocalHit{}, false
	}
}

// normalAt keeps only the dominant axis of the hit point scaled by the
// half-extents; the other two lanes are zeroed. The result is unit length
// only after the world rotation and normalization.
func (b Box) normalAt(p core.Vec3) core.Vec3 {
	scaled := p.DivideVec(b.Extents)

	ax := math32.Abs(scaled.X)
	ay := math32.Abs(scaled.Y)
	az := math32.Abs(scaled.Z)

	switch {
	case ax >= ay && ax >= az:
		return core.Vec3{X: scaled.X}
	case ay >= az:
		return core.Vec3{Y: scaled.Y}
	default:
		return core.Vec3{Z: scaled.Z}
	}
}
