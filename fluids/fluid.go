// Package fluids implements an SPH-like Newtonian fluid: a population
// of fluid particles whose density, pressure, and resulting
// pressure/viscosity accelerations are recomputed every step from a
// kernel-weighted neighborhood, grounded in physim's fluids::fluid and
// fluids::newtonian.
package fluids

import (
	"sync"

	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/particles"
	"github.com/lluisalemanypuig/physim/structures"
)

// DefaultLOD is the octree level-of-detail used to partition a fluid's
// particles for neighborhood queries, matching structures.DefaultLOD.
const DefaultLOD = structures.DefaultLOD

// Fluid is a Newtonian SPH fluid: n fluid particles sharing a rest
// density, viscosity, speed of sound, and kernel radius, grounded in
// physim's fluids::newtonian.
type Fluid struct {
	Particles []*particles.FluidParticle

	RestDensity  float32
	Viscosity    float32
	SpeedOfSound float32
	KernelRadius float32
	Volume       float32

	Density  DensityKernel
	Pressure PressureKernel
	Visc     ViscosityKernel

	tree *structures.Octree
}

// NewFluid allocates n fluid particles with mass restDensity*volume/n
// each, and physim's default SPH kernels.
func NewFluid(n int, volume, restDensity, viscosity, speedOfSound, kernelRadius float32) *Fluid {
	mass := restDensity * volume / float32(n)
	ps := make([]*particles.FluidParticle, n)
	for i := range ps {
		p := particles.NewFluidParticle(lin.V3{})
		p.Mass = mass
		p.Index = i
		ps[i] = p
	}
	return &Fluid{
		Particles:    ps,
		RestDensity:  restDensity,
		Viscosity:    viscosity,
		SpeedOfSound: speedOfSound,
		KernelRadius: kernelRadius,
		Volume:       volume,
		Density:      Poly6Density,
		Pressure:     SpikyPressureGradient,
		Visc:         ViscosityLaplacian,
	}
}

// RebuildPartition clears and rebuilds the fluid's private octree over
// current particle positions. Called once per step before the
// neighborhood pass, and once when the fluid's initial state is made.
func (f *Fluid) RebuildPartition() {
	points := make([]lin.V3, len(f.Particles))
	for i, p := range f.Particles {
		points[i] = p.CurPos
	}
	f.tree = structures.New(points, DefaultLOD)
}

// neighbor is a (index, squared-distance) pair within kernel radius of
// some particle i, excluding i itself.
type neighbor struct {
	j  int
	d2 float32
}

func (f *Fluid) neighbors(i int) []neighbor {
	pos := f.Particles[i].CurPos
	candidates := f.tree.IndicesInSphere(pos, f.KernelRadius)
	out := make([]neighbor, 0, len(candidates))
	for _, j := range candidates {
		if j == i {
			continue
		}
		d2 := pos.DistSqr(f.Particles[j].CurPos)
		if d2 <= f.KernelRadius*f.KernelRadius {
			out = append(out, neighbor{j: j, d2: d2})
		}
	}
	return out
}

// MakeInitialState computes every particle's initial density and
// pressure from its neighborhood, matching physim's
// fluid::make_initial_state. Particles must already have their
// starting positions.
func (f *Fluid) MakeInitialState() {
	f.RebuildPartition()
	for i := range f.Particles {
		f.updateDensityPressure(i, f.neighbors(i))
	}
}

func (f *Fluid) updateDensityPressure(i int, neighs []neighbor) {
	p := f.Particles[i]
	rho := p.Mass * f.Density(f.KernelRadius, 0)
	for _, n := range neighs {
		rho += f.Particles[n.j].Mass * f.Density(f.KernelRadius, n.d2)
	}
	p.Density = rho
	p.Pressure = f.SpeedOfSound * f.SpeedOfSound * (rho - f.RestDensity)
}

func (f *Fluid) accelerationOf(i int, neighs []neighbor) lin.V3 {
	p := f.Particles[i]
	var a lin.V3
	for _, n := range neighs {
		q := f.Particles[n.j]
		if q.Density < lin.Epsilon || p.Density < lin.Epsilon {
			continue
		}
		rij := p.CurPos.Sub(q.CurPos)

		pressureCoeff := -q.Mass * (p.Pressure/(p.Density*p.Density) + q.Pressure/(q.Density*q.Density))
		a = a.Add(f.Pressure(f.KernelRadius, rij, n.d2).Scale(pressureCoeff))

		viscCoeff := f.Viscosity * q.Mass / (p.Density * q.Density) * f.Visc(f.KernelRadius, n.d2)
		a = a.Add(q.CurVel.Sub(p.CurVel).Scale(viscCoeff))
	}
	return a
}

// UpdateForces rebuilds the spatial partition, recomputes every
// particle's density and pressure, and accumulates the pressure and
// viscosity acceleration terms into Force, sequentially.
func (f *Fluid) UpdateForces() {
	f.RebuildPartition()
	neighs := make([][]neighbor, len(f.Particles))
	for i := range f.Particles {
		neighs[i] = f.neighbors(i)
		f.updateDensityPressure(i, neighs[i])
	}
	for i, p := range f.Particles {
		a := f.accelerationOf(i, neighs[i])
		p.Force = p.Force.Add(a.Scale(p.Mass))
	}
}

// UpdateForcesWorkers is UpdateForces, except the per-particle
// neighbor-density and acceleration passes are partitioned across
// workers goroutines (workers <= 0 behaves like UpdateForces). Each
// goroutine only ever writes its own particles' Density, Pressure, and
// Force, so the result is bit-identical to UpdateForces up to
// floating-point summation order within a single particle's own
// neighbor loop, which is unaffected by partitioning.
func (f *Fluid) UpdateForcesWorkers(workers int) {
	if workers <= 1 {
		f.UpdateForces()
		return
	}

	f.RebuildPartition()
	n := len(f.Particles)
	neighs := make([][]neighbor, n)

	partition(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			neighs[i] = f.neighbors(i)
		}
	})
	partition(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f.updateDensityPressure(i, neighs[i])
		}
	})
	partition(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			a := f.accelerationOf(i, neighs[i])
			f.Particles[i].Force = f.Particles[i].Force.Add(a.Scale(f.Particles[i].Mass))
		}
	})
}

// partition splits [0,n) into up to workers contiguous chunks and runs
// do on each chunk concurrently, returning once every chunk completes.
func partition(n, workers int, do func(lo, hi int)) {
	if n == 0 {
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			do(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// ClearForces zeroes every particle's accumulated force, called after
// the stepper has consumed it for this step's integration.
func (f *Fluid) ClearForces() {
	for _, p := range f.Particles {
		p.Force = lin.V3{}
	}
}
