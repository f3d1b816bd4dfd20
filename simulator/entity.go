package simulator

import "github.com/google/uuid"

// EntityID is a stable external handle for a particle, mesh, or fluid
// added to a Simulator. Unlike a population index, an EntityID remains
// meaningful (though no longer resolvable) across a clear_*/re-insertion
// cycle, matching spec.md §5's distinction between index stability
// ("for the lifetime of the population") and a caller-facing identity
// that survives longer than that.
type EntityID uuid.UUID

// NewEntityID returns a fresh random EntityID.
func NewEntityID() EntityID { return EntityID(uuid.New()) }

// String renders the entity ID in canonical UUID form.
func (id EntityID) String() string { return uuid.UUID(id).String() }
