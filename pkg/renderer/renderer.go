// Package renderer drives the per-pixel sampling loop: primary rays from the
// camera, radiance estimates from the integrator, tone mapping into the
// framebuffer. The default mode is sequential and consumes the scene's PRNG
// in pixel-major, sample-major order, which makes output byte-reproducible
// for a fixed seed.
package renderer

import (
	"time"

	"github.com/jmars/go-implicit-pathtracer/pkg/core"
	"github.com/jmars/go-implicit-pathtracer/pkg/imageio"
	"github.com/jmars/go-implicit-pathtracer/pkg/integrator"
	"github.com/jmars/go-implicit-pathtracer/pkg/scene"
)

// Renderer renders one frame of a scene
type Renderer struct {
	scene  *scene.Scene
	camera *Camera
	tracer *integrator.PathTracer
}

// New creates a renderer for the given scene
func New(s *scene.Scene) *Renderer {
	return &Renderer{
		scene:  s,
		camera: NewCamera(s.Camera, s.Width, s.Height),
		tracer: integrator.NewPathTracer(s),
	}
}

// Render renders the frame sequentially with the scene's own PRNG stream.
// This is the reference deterministic mode.
func (r *Renderer) Render() (*imageio.Framebuffer, RenderStats) {
	fb := r.newFramebuffer()

	start := time.Now()
	band := r.renderBounds(fb, 0, r.scene.Height, r.scene.Rand)
	band.Band = 0

	stats := RenderStats{Bands: []BandStats{band}}
	stats.finalize(time.Since(start))
	return fb, stats
}

// newFramebuffer allocates the frame with every pixel pre-filled with the
// tonemapped background color.
func (r *Renderer) newFramebuffer() *imageio.Framebuffer {
	return imageio.NewFramebuffer(r.scene.Width, r.scene.Height, core.ToneMap(r.scene.Background))
}

// renderBounds renders the half-open row range [rowStart, rowEnd) using the
// given PRNG stream, and reports per-band statistics.
func (r *Renderer) renderBounds(fb *imageio.Framebuffer, rowStart, rowEnd int, rng *core.Xoroshiro) BandStats {
	start := time.Now()
	samples := r.scene.Samples
	invSamples := 1 / float32(samples)

	for y := rowStart; y < rowEnd; y++ {
		for x := 0; x < r.scene.Width; x++ {
			var accum core.Vec3
			for s := 0; s < samples; s++ {
				ray := r.camera.GetRay(x, y, rng)
				accum = accum.Add(r.tracer.Trace(ray, 1, rng))
			}
			fb.SetRGB(x, y, core.ToneMap(accum.Multiply(invSamples)))
		}
	}

	pixels := (rowEnd - rowStart) * r.scene.Width
	return BandStats{
		RowStart:    rowStart,
		RowEnd:      rowEnd,
		Pixels:      pixels,
		PrimaryRays: pixels * samples,
		RenderTime:  time.Since(start),
	}
}
