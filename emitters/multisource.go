package emitters

import "github.com/lluisalemanypuig/physim/particles"

// Multisource splits a population of Population particles evenly across
// Sources, dispatching each particle to its source by index, grounded
// in physim's templated multisource<T>.
//
// Particle i is handed to Sources[i/chunk], chunk = Population /
// len(Sources); any remainder particles (from integer division) are
// handed to the last source. Population must be set to the size of the
// population this Multisource will be used to emit before Emit is
// called.
type Multisource[T Source] struct {
	Sources    []T
	Population int
}

// Emit dispatches p to the source responsible for p.Index.
func (m *Multisource[T]) Emit(p *particles.Free) {
	if len(m.Sources) == 0 || m.Population <= 0 {
		return
	}
	chunk := m.Population / len(m.Sources)
	if chunk == 0 {
		chunk = 1
	}
	k := p.Index / chunk
	if k >= len(m.Sources) {
		k = len(m.Sources) - 1
	}
	m.Sources[k].Emit(p)
}
