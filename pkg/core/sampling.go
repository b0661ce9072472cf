package core

import (
	"github.com/chewxy/math32"
)

// SampleUniformSphere generates a uniform random direction on the unit sphere
func SampleUniformSphere(rng *Xoroshiro) Vec3 {
	theta := 2 * math32.Pi * rng.Float32()
	z := 2*rng.Float32() - 1
	h := math32.Sqrt(1 - z*z)

	return Vec3{
		X: h * math32.Cos(theta),
		Y: h * math32.Sin(theta),
		Z: z,
	}
}

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around a unit normal, by offsetting a uniform sphere sample
func SampleCosineHemisphere(normal Vec3, rng *Xoroshiro) Vec3 {
	return SampleUniformSphere(rng).Add(normal).Normalize()
}

// CosineHemispherePDF returns the solid-angle density of
// SampleCosineHemisphere for direction dir: max(0, dir·normal)/π
func CosineHemispherePDF(dir, normal Vec3) float32 {
	cos := dir.Dot(normal)
	if cos <= 0 {
		return 0
	}
	return cos / math32.Pi
}
