package flight

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
)

// Step is the per-tick orchestrator for one aircraft: snapshot, actuate,
// compute aerodynamic forces, add gravity and thrust, submit. It owns no
// state beyond its references, so a Step is as cheap to discard as to
// keep.
type Step struct {
	aircraft *Aircraft
	source   physics.KinematicSource
	sink     physics.ForceSink
	actuator *Actuator
}

// NewStep wires an aircraft to its engine handle. Source and sink are
// usually the same *physics.Body, but the split keeps the step testable
// against fixtures.
func NewStep(ac *Aircraft, source physics.KinematicSource, sink physics.ForceSink) *Step {
	return &Step{
		aircraft: ac,
		source:   source,
		sink:     sink,
		actuator: NewActuator(ac),
	}
}

// Aircraft returns the aircraft this step drives.
func (st *Step) Aircraft() *Aircraft {
	return st.aircraft
}

// Tick runs one fixed-timestep update. Must complete before the
// integrator's step for the same tick; nothing here blocks or performs
// I/O.
func (st *Step) Tick(in ControlState, dt float64) {
	state := st.source.State()
	ac := st.aircraft

	st.actuator.Update(in, dt)

	force, torque := ac.model.Forces(state, ac)

	// Gravity, world-frame down.
	force = force.Add(mgl64.Vec3{0, -state.Mass * ac.Gravity, 0})

	// Thrust along the body forward axis.
	if ac.thrust != 0 {
		force = force.Add(state.Forward().Mul(ac.thrust))
	}

	st.sink.AddForceTorque(force, torque)
}
