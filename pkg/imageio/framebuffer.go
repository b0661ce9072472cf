// Package imageio owns the 8-bit framebuffer and the image writers.
package imageio

import (
	"github.com/chewxy/math32"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
)

// Framebuffer is a contiguous 3·width·height byte buffer in row-major,
// top-to-bottom, R,G,B order.
type Framebuffer struct {
	Width, Height int
	Pix           []uint8
}

// NewFramebuffer allocates a framebuffer with every pixel set to the given
// displayable fill color.
func NewFramebuffer(width, height int, fill core.Vec3) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}

	r, g, b := quantize(fill)
	for i := 0; i < len(fb.Pix); i += 3 {
		fb.Pix[i] = r
		fb.Pix[i+1] = g
		fb.Pix[i+2] = b
	}

	return fb
}

// SetRGB stores a displayable color at pixel (x, y). Components outside
// [0,1] are clamped before quantization.
func (fb *Framebuffer) SetRGB(x, y int, c core.Vec3) {
	i := 3 * (y*fb.Width + x)
	fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2] = quantize(c)
}

// At returns the stored bytes of pixel (x, y)
func (fb *Framebuffer) At(x, y int) (r, g, b uint8) {
	i := 3 * (y*fb.Width + x)
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

func quantize(c core.Vec3) (r, g, b uint8) {
	c = c.Clamp(0, 1)
	return uint8(math32.Round(255 * c.X)),
		uint8(math32.Round(255 * c.Y)),
		uint8(math32.Round(255 * c.Z))
}
