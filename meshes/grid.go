package meshes

import "github.com/lluisalemanypuig/physim/particles"

// edge is one spring of a Grid: the local indices of its two endpoints
// and their rest distance at the time the mesh's initial state was
// built.
type edge struct {
	a, b    int
	restLen float32
}

// Grid is a 2-D regular mass-spring mesh of R rows by C columns,
// grounded in physim's mesh2d_regular. Three toggleable edge classes
// connect a particle (i,j) to its neighbors:
//
//   - stretch: (i,j)-(i,j+1) and (i,j)-(i+1,j)
//   - shear:   (i,j)-(i+1,j+1) and (i,j)-(i-1,j+1)
//   - bend:    (i,j)-(i,j+2) and (i,j)-(i+2,j)
//
// Fixed particles still take part in spring forces (so their pull
// shows up on their neighbors) but are never integrated; that
// exclusion is the simulator's responsibility, not this mesh's.
type Grid struct {
	Particles []*particles.MeshParticle

	Ke float32
	Kd float32

	Rows, Cols int

	SimulateStretch bool
	SimulateShear   bool
	SimulateBend    bool

	stretch []edge
	shear   []edge
	bend    []edge
}

// NewGrid allocates an R-by-C grid of particles with total mass kg
// (distributed evenly) and physim's default spring/particle
// coefficients, with all three edge classes enabled.
func NewGrid(rows, cols int, kg float32) *Grid {
	g := &Grid{
		Particles:       newMeshParticles(rows*cols, kg, 0.8, 0.2),
		Ke:              100,
		Kd:              0.05,
		Rows:            rows,
		Cols:            cols,
		SimulateStretch: true,
		SimulateShear:   true,
		SimulateBend:    true,
	}
	return g
}

// Index returns the single flat index of the particle at row i, column
// j, matching physim's get_global_index.
func (g *Grid) Index(i, j int) int { return i*g.Cols + j }

// At returns the particle at row i, column j.
func (g *Grid) At(i, j int) *particles.MeshParticle { return g.Particles[g.Index(i, j)] }

// MakeInitialState records the current distance for every edge in
// every class as that edge's rest length. Must be called once the
// particles have been given their starting positions, and before the
// first call to UpdateForces.
func (g *Grid) MakeInitialState() {
	g.stretch = g.stretch[:0]
	g.shear = g.shear[:0]
	g.bend = g.bend[:0]

	for i := 0; i < g.Rows; i++ {
		for j := 0; j < g.Cols; j++ {
			if j+1 < g.Cols {
				g.stretch = append(g.stretch, g.newEdge(i, j, i, j+1))
			}
			if i+1 < g.Rows {
				g.stretch = append(g.stretch, g.newEdge(i, j, i+1, j))
			}
			if i+1 < g.Rows && j+1 < g.Cols {
				g.shear = append(g.shear, g.newEdge(i, j, i+1, j+1))
			}
			if i-1 >= 0 && j+1 < g.Cols {
				g.shear = append(g.shear, g.newEdge(i, j, i-1, j+1))
			}
			if j+2 < g.Cols {
				g.bend = append(g.bend, g.newEdge(i, j, i, j+2))
			}
			if i+2 < g.Rows {
				g.bend = append(g.bend, g.newEdge(i, j, i+2, j))
			}
		}
	}
}

func (g *Grid) newEdge(i0, j0, i1, j1 int) edge {
	a, b := g.Index(i0, j0), g.Index(i1, j1)
	return edge{a: a, b: b, restLen: g.Particles[a].CurPos.Dist(g.Particles[b].CurPos)}
}

// UpdateForces accumulates the spring force for every edge in every
// enabled class onto both of its endpoints. It does not clear forces
// first, matching physim's update_forces precondition.
func (g *Grid) UpdateForces() {
	if g.SimulateStretch {
		g.applyEdges(g.stretch)
	}
	if g.SimulateShear {
		g.applyEdges(g.shear)
	}
	if g.SimulateBend {
		g.applyEdges(g.bend)
	}
}

func (g *Grid) applyEdges(edges []edge) {
	for _, e := range edges {
		springForce(g.Particles[e.a], g.Particles[e.b], e.restLen, g.Ke, g.Kd)
	}
}
