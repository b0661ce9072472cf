package renderer

import (
	"github.com/chewxy/math32"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
	"github.com/jmars/go-implicit-pathtracer/pkg/scene"
)

// Camera generates jittered primary rays from the scene camera's basis and
// horizontal field of view.
type Camera struct {
	position core.Vec3
	right    core.Vec3
	up       core.Vec3
	forward  core.Vec3

	width, height float32
	tanHalfX      float32
	tanHalfY      float32
}

// NewCamera creates a ray generator for the given camera and frame size.
// The vertical extent follows from the aspect ratio.
func NewCamera(cam scene.Camera, width, height int) *Camera {
	tanHalfX := math32.Tan(cam.FovX / 2)

	return &Camera{
		position: cam.Position,
		right:    cam.Right,
		up:       cam.Up,
		forward:  cam.Forward,
		width:    float32(width),
		height:   float32(height),
		tanHalfX: tanHalfX,
		tanHalfY: float32(height) / float32(width) * tanHalfX,
	}
}

// GetRay returns a normalized primary ray through pixel (x, y), jittered
// uniformly within the pixel footprint.
func (c *Camera) GetRay(x, y int, rng *core.Xoroshiro) core.Ray {
	jx := rng.Float32()
	jy := rng.Float32()

	nx := (2*(float32(x)+jx)/c.width - 1) * c.tanHalfX
	ny := -(2*(float32(y)+jy)/c.height - 1) * c.tanHalfY

	direction := c.right.Multiply(nx).
		Add(c.up.Multiply(ny)).
		Add(c.forward).
		Normalize()

	return core.NewRay(c.position, direction)
}
