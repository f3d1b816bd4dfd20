package fluids

import (
	"math"

	"github.com/lluisalemanypuig/physim/math/lin"
)

// DensityKernel weights a neighbor's mass contribution to a particle's
// density as a function of the kernel radius h and the squared
// distance r2 between the two particles. Grounded in physim's
// fluids::kernel_pair density slot; the default is the SPH poly6
// kernel (Müller et al., 2003).
type DensityKernel func(h, r2 float32) float32

// PressureKernel returns the (vector-valued) gradient term used to
// accumulate the pressure-driven acceleration contributed by a
// neighbor displaced by rij (this particle minus the neighbor), at
// squared distance r2, for kernel radius h. The default is the
// (rotationally-symmetric) spiky kernel's gradient.
type PressureKernel func(h float32, rij lin.V3, r2 float32) lin.V3

// ViscosityKernel weights a neighbor's velocity-difference
// contribution to viscous acceleration as a function of kernel
// radius h and squared distance r2. The default is the viscosity
// kernel's Laplacian.
type ViscosityKernel func(h, r2 float32) float32

// Poly6Density is the default DensityKernel.
func Poly6Density(h, r2 float32) float32 {
	h2 := h * h
	if r2 > h2 {
		return 0
	}
	diff := h2 - r2
	coeff := 315 / (64 * math.Pi * pow9(float64(h)))
	return float32(coeff) * diff * diff * diff
}

// SpikyPressureGradient is the default PressureKernel.
func SpikyPressureGradient(h float32, rij lin.V3, r2 float32) lin.V3 {
	r := sqrt32(r2)
	if r < lin.Epsilon || r > h {
		return lin.V3{}
	}
	coeff := float32(-45 / (math.Pi * pow6(float64(h))))
	scale := coeff * (h - r) * (h - r) / r
	return rij.Scale(scale)
}

// ViscosityLaplacian is the default ViscosityKernel.
func ViscosityLaplacian(h, r2 float32) float32 {
	r := sqrt32(r2)
	if r > h {
		return 0
	}
	coeff := float32(45 / (math.Pi * pow6(float64(h))))
	return coeff * (h - r)
}

func pow6(x float64) float64 { return x * x * x * x * x * x }
func pow9(x float64) float64 { return pow6(x) * x * x * x }

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }
