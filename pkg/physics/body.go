// Package physics provides the rigid-body layer the flight-dynamics
// subsystem pushes forces into: per-tick kinematic snapshots, force/torque
// accumulation, and a fixed-timestep integrator. Body frame convention:
// +X right, +Y up, +Z forward.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// State is a kinematic snapshot of one rigid body. The aerodynamics code
// reads a copy each tick and never mutates it; the integrator is the single
// writer of kinematic state.
type State struct {
	Position        mgl64.Vec3 // world frame, meters
	Orientation     mgl64.Quat // body-to-world rotation
	Velocity        mgl64.Vec3 // world frame, m/s
	AngularVelocity mgl64.Vec3 // world frame, rad/s
	Mass            float64    // kg
	Inertia         float64    // isotropic moment of inertia, kg·m²
	CenterOfMass    mgl64.Vec3 // body-frame offset, usually zero
}

// BodyToWorld rotates a body-frame vector into the world frame.
func (s State) BodyToWorld(v mgl64.Vec3) mgl64.Vec3 {
	return s.Orientation.Rotate(v)
}

// WorldToBody rotates a world-frame vector into the body frame.
func (s State) WorldToBody(v mgl64.Vec3) mgl64.Vec3 {
	return s.Orientation.Inverse().Rotate(v)
}

// Forward returns the body's forward axis (+Z) in the world frame.
func (s State) Forward() mgl64.Vec3 {
	return s.BodyToWorld(mgl64.Vec3{0, 0, 1})
}

// Up returns the body's up axis (+Y) in the world frame.
func (s State) Up() mgl64.Vec3 {
	return s.BodyToWorld(mgl64.Vec3{0, 1, 0})
}

// Speed returns the magnitude of the linear velocity.
func (s State) Speed() float64 {
	return s.Velocity.Len()
}

// KinematicSource supplies per-tick kinematic snapshots. The external
// engine handle satisfies this; tests substitute fixtures.
type KinematicSource interface {
	State() State
}

// ForceSink accepts force submissions for one body for the current tick.
// Both submission forms from the engine API are available: a combined
// (force, torque) pair about the center of mass, or a force at a world
// point which the sink reduces to an equivalent pair itself.
type ForceSink interface {
	AddForceTorque(force, torque mgl64.Vec3)
	AddForceAtPoint(force, worldPoint mgl64.Vec3)
}

// Body is a simulated rigid body: a kinematic state plus the force and
// torque accumulated for the tick in progress. Forces accumulate between
// integration steps and are cleared by World.Step.
type Body struct {
	state  State
	force  mgl64.Vec3
	torque mgl64.Vec3
}

// NewBody creates a body from an initial state. A zero or negative inertia
// is replaced with the mass, which keeps rotational response defined for
// definitions that omit it.
func NewBody(state State) *Body {
	if state.Orientation.Len() == 0 {
		state.Orientation = mgl64.QuatIdent()
	}
	if state.Inertia <= 0 {
		state.Inertia = state.Mass
	}
	return &Body{state: state}
}

// State returns the current kinematic snapshot.
func (b *Body) State() State {
	return b.state
}

// SetState replaces the kinematic state. Intended for spawning and tests;
// during simulation only the integrator writes state.
func (b *Body) SetState(state State) {
	if state.Orientation.Len() == 0 {
		state.Orientation = mgl64.QuatIdent()
	}
	b.state = state
}

// AddForceTorque accumulates a world-frame force through the center of
// mass and a world-frame torque about it.
func (b *Body) AddForceTorque(force, torque mgl64.Vec3) {
	b.force = b.force.Add(force)
	b.torque = b.torque.Add(torque)
}

// AddForceAtPoint accumulates a world-frame force applied at a world-space
// point, contributing torque about the center of mass.
func (b *Body) AddForceAtPoint(force, worldPoint mgl64.Vec3) {
	com := b.state.Position.Add(b.state.BodyToWorld(b.state.CenterOfMass))
	arm := worldPoint.Sub(com)
	b.force = b.force.Add(force)
	b.torque = b.torque.Add(arm.Cross(force))
}

// PendingForce returns the force accumulated so far this tick.
func (b *Body) PendingForce() mgl64.Vec3 { return b.force }

// PendingTorque returns the torque accumulated so far this tick.
func (b *Body) PendingTorque() mgl64.Vec3 { return b.torque }

func (b *Body) clearAccumulators() {
	b.force = mgl64.Vec3{}
	b.torque = mgl64.Vec3{}
}
