package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// World integrates registered bodies forward by a fixed timestep. Forces
// for a tick must be fully submitted before Step runs; Step consumes and
// clears every body's accumulators.
type World struct {
	bodies []*Body
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// AddBody registers a body for integration.
func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters a body. Removing an unknown body is a no-op.
func (w *World) RemoveBody(b *Body) {
	for i, existing := range w.bodies {
		if existing == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

// Bodies returns the number of registered bodies.
func (w *World) Bodies() int {
	return len(w.bodies)
}

// Step advances all bodies by dt seconds using semi-implicit Euler:
// velocities update from the accumulated force/torque first, then
// positions and orientation update from the new velocities.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		w.integrate(b, dt)
		b.clearAccumulators()
	}
}

func (w *World) integrate(b *Body, dt float64) {
	s := &b.state
	if s.Mass <= 0 {
		return
	}

	s.Velocity = s.Velocity.Add(b.force.Mul(dt / s.Mass))
	s.AngularVelocity = s.AngularVelocity.Add(b.torque.Mul(dt / s.Inertia))

	s.Position = s.Position.Add(s.Velocity.Mul(dt))

	// dq/dt = ½ ω q, with ω as a pure quaternion in the world frame.
	omega := mgl64.Quat{W: 0, V: s.AngularVelocity}
	dq := omega.Mul(s.Orientation).Scale(0.5 * dt)
	s.Orientation = s.Orientation.Add(dq).Normalize()
}
