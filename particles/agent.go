package particles

import (
	"github.com/lluisalemanypuig/physim/geometry"
	"github.com/lluisalemanypuig/physim/math/lin"
)

// Behaviour is a bitmask of the steering behaviours an Agent can
// combine, following Reynolds' "Steering Behaviors For Autonomous
// Characters". Grounded in physim's agent_behaviour_type.
type Behaviour uint8

const (
	BehaviourNone                        Behaviour = 1 << 0
	BehaviourSeek                        Behaviour = 1 << 1
	BehaviourFlee                        Behaviour = 1 << 2
	BehaviourArrival                     Behaviour = 1 << 3
	BehaviourCollisionAvoidance          Behaviour = 1 << 4
	BehaviourUnalignedCollisionAvoidance Behaviour = 1 << 5
	BehaviourWalkWithMe                  Behaviour = 1 << 6
)

// Agent is a Sized particle steered towards (or around) a Target using
// one or more Reynolds behaviours, grounded in physim's agent_particle.
// Its Starttime is ignored by the simulator; its Lifetime is not.
type Agent struct {
	Sized

	Target      lin.V3
	Orientation lin.V3
	Behaviour   Behaviour

	MaxSpeed float32
	MaxForce float32

	AlignWeight     float32
	SeekWeight      float32
	FleeWeight      float32
	ArrivalWeight   float32
	ArrivalDistance float32
	CollWeight      float32
	CollDistance    float32
	UcollWeight     float32
	UcollDistance   float32
	WowWeight       float32
	WowDistance     float32
}

// NewAgent returns an Agent at pos with physim's default weights (each
// of the seven behaviour weights equal to 1/7) and no behaviour active.
func NewAgent(pos lin.V3) *Agent {
	const seventh = float32(1.0 / 7.0)
	return &Agent{
		Sized:           *NewSized(pos),
		Behaviour:       BehaviourNone,
		MaxSpeed:        1,
		MaxForce:        1,
		AlignWeight:     seventh,
		SeekWeight:      seventh,
		FleeWeight:      seventh,
		ArrivalWeight:   seventh,
		ArrivalDistance: 0,
		CollWeight:      seventh,
		CollDistance:    5,
		UcollWeight:     seventh,
		UcollDistance:   5,
		WowWeight:       seventh,
		WowDistance:     5,
	}
}

// IsBehaviourSet reports whether b is active in this agent's Behaviour
// mask.
func (a *Agent) IsBehaviourSet(b Behaviour) bool { return a.Behaviour&b != 0 }

// SetBehaviour activates b.
func (a *Agent) SetBehaviour(b Behaviour) { a.Behaviour |= b }

// UnsetBehaviour deactivates b.
func (a *Agent) UnsetBehaviour(b Behaviour) { a.Behaviour &^= b }

// UnsetAllBehaviours clears every active behaviour.
func (a *Agent) UnsetAllBehaviours() { a.Behaviour = BehaviourNone }

// steer truncates (desired - CurVel) to MaxForce, the shared final step
// of every target-seeking Reynolds behaviour.
func (a *Agent) steer(desired lin.V3) lin.V3 {
	return desired.Sub(a.CurVel).Truncate(a.MaxForce)
}

// SeekBehaviour returns the weighted steering vector that moves the
// agent towards Target at full speed.
func (a *Agent) SeekBehaviour() lin.V3 {
	dir := a.Target.Sub(a.CurPos)
	if dir.LenSqr() < lin.Epsilon {
		return lin.V3{}
	}
	desired := dir.Unit().Scale(a.MaxSpeed)
	return a.steer(desired).Scale(a.SeekWeight)
}

// FleeBehaviour returns the weighted steering vector that moves the
// agent away from Target at full speed.
func (a *Agent) FleeBehaviour() lin.V3 {
	dir := a.CurPos.Sub(a.Target)
	if dir.LenSqr() < lin.Epsilon {
		return lin.V3{}
	}
	desired := dir.Unit().Scale(a.MaxSpeed)
	return a.steer(desired).Scale(a.FleeWeight)
}

// ArrivalBehaviour is SeekBehaviour, except the desired speed ramps
// down linearly over the last ArrivalDistance meters to Target so the
// agent comes to rest there instead of overshooting.
func (a *Agent) ArrivalBehaviour() lin.V3 {
	dir := a.Target.Sub(a.CurPos)
	dist := dir.Len()
	if dist < lin.Epsilon {
		return lin.V3{}
	}
	speed := a.MaxSpeed
	if a.ArrivalDistance > 0 && dist < a.ArrivalDistance {
		speed = a.MaxSpeed * dist / a.ArrivalDistance
	}
	desired := dir.Scale(speed / dist)
	return a.steer(desired).Scale(a.ArrivalWeight)
}

// ApplyTargetBehaviours sums the weighted contributions of whichever of
// seek, flee, and arrival are currently active, matching physim's
// agent_particle::apply_behaviours(vec3&).
func (a *Agent) ApplyTargetBehaviours() lin.V3 {
	var v lin.V3
	if a.IsBehaviourSet(BehaviourSeek) {
		v = v.Add(a.SeekBehaviour())
	}
	if a.IsBehaviourSet(BehaviourFlee) {
		v = v.Add(a.FleeBehaviour())
	}
	if a.IsBehaviourSet(BehaviourArrival) {
		v = v.Add(a.ArrivalBehaviour())
	}
	return v
}

// CollisionAvoidanceBehaviour casts the agent's orientation CollDistance
// meters ahead and, if that path crosses a geometry in scene, steers
// away from the point of contact.
func (a *Agent) CollisionAvoidanceBehaviour(scene []geometry.Geometry) lin.V3 {
	ori := a.Orientation
	if ori.LenSqr() < lin.Epsilon {
		ori = a.CurVel
	}
	if ori.LenSqr() < lin.Epsilon {
		return lin.V3{}
	}
	ori = ori.Unit()
	ahead := a.CurPos.Add(ori.Scale(a.CollDistance))

	for _, g := range scene {
		hit, ok := g.IntersectsSegmentPoint(a.CurPos, ahead)
		if !ok {
			continue
		}
		away := a.CurPos.Sub(hit)
		if away.LenSqr() < lin.Epsilon {
			continue
		}
		desired := away.Unit().Scale(a.MaxSpeed)
		return a.steer(desired).Scale(a.CollWeight)
	}
	return lin.V3{}
}

// inFOV reports whether point p lies within 90 degrees to either side
// of the agent's direction of travel (its 180-degree forward field of
// view), matching the FOV physim's unaligned-avoidance and
// walk-with-me behaviours restrict themselves to.
func (a *Agent) inFOV(p lin.V3) bool {
	fwd := a.CurVel
	if fwd.LenSqr() < lin.Epsilon {
		fwd = a.Orientation
	}
	if fwd.LenSqr() < lin.Epsilon {
		return true
	}
	d := p.Sub(a.CurPos)
	if d.LenSqr() < lin.Epsilon {
		return true
	}
	return fwd.Unit().Dot(d.Unit()) >= 0
}

// UnalignedCollisionAvoidanceBehaviour steers away from nearby agents
// (other than itself) that are within UcollDistance of this agent's
// surface and fall within its field of view, ignoring agents whose
// current and predicted positions both sit outside that FOV.
func (a *Agent) UnalignedCollisionAvoidanceBehaviour(agents []*Agent) lin.V3 {
	var v lin.V3
	for _, other := range agents {
		if other == a || other.Index == a.Index {
			continue
		}
		gap := a.CurPos.Dist(other.CurPos) - a.R - other.R
		if gap > a.UcollDistance {
			continue
		}
		predicted := other.CurPos.Add(other.CurVel)
		if !a.inFOV(other.CurPos) && !a.inFOV(predicted) {
			continue
		}
		away := a.CurPos.Sub(other.CurPos)
		if away.LenSqr() < lin.Epsilon {
			continue
		}
		desired := away.Unit().Scale(a.MaxSpeed)
		v = v.Add(a.steer(desired))
	}
	return v.Scale(a.UcollWeight)
}

// WalkWithMeBehaviour steers towards the average velocity of nearby
// agents within WowDistance and this agent's field of view, so a group
// of agents tends to move together.
func (a *Agent) WalkWithMeBehaviour(agents []*Agent) lin.V3 {
	var sum lin.V3
	n := 0
	for _, other := range agents {
		if other == a || other.Index == a.Index {
			continue
		}
		gap := a.CurPos.Dist(other.CurPos) - a.R - other.R
		if gap > a.WowDistance {
			continue
		}
		predicted := other.CurPos.Add(other.CurVel)
		if !a.inFOV(other.CurPos) && !a.inFOV(predicted) {
			continue
		}
		sum = sum.Add(other.CurVel)
		n++
	}
	if n == 0 {
		return lin.V3{}
	}
	desired := sum.Scale(1 / float32(n))
	if desired.LenSqr() > lin.Epsilon {
		desired = desired.Unit().Scale(a.MaxSpeed)
	}
	return a.steer(desired).Scale(a.WowWeight)
}

// ApplySceneAvoidance applies collision avoidance against static
// geometry, matching physim's
// agent_particle::apply_behaviours(scene, vec3&).
func (a *Agent) ApplySceneAvoidance(scene []geometry.Geometry) lin.V3 {
	if !a.IsBehaviourSet(BehaviourCollisionAvoidance) {
		return lin.V3{}
	}
	return a.CollisionAvoidanceBehaviour(scene)
}

// ApplyAgentBehaviours applies unaligned collision avoidance and
// walk-with-me against the rest of the agent population, matching
// physim's agent_particle::apply_behaviours(agents, vec3&).
func (a *Agent) ApplyAgentBehaviours(agents []*Agent) lin.V3 {
	var v lin.V3
	if a.IsBehaviourSet(BehaviourUnalignedCollisionAvoidance) {
		v = v.Add(a.UnalignedCollisionAvoidanceBehaviour(agents))
	}
	if a.IsBehaviourSet(BehaviourWalkWithMe) {
		v = v.Add(a.WalkWithMeBehaviour(agents))
	}
	return v
}
