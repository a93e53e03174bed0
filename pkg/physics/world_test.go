package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWorld_StepLinear(t *testing.T) {
	w := NewWorld()
	b := NewBody(State{Mass: 2})
	w.AddBody(b)

	// F = 4 N on 2 kg for 0.5 s: v = 1 m/s, then x = v·dt = 0.5 m.
	b.AddForceTorque(mgl64.Vec3{4, 0, 0}, mgl64.Vec3{})
	w.Step(0.5)

	s := b.State()
	if !vec3AlmostEqual(s.Velocity, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("Velocity = %v, want (1,0,0)", s.Velocity)
	}
	if !vec3AlmostEqual(s.Position, mgl64.Vec3{0.5, 0, 0}, 1e-12) {
		t.Errorf("Position = %v, want (0.5,0,0)", s.Position)
	}
}

func TestWorld_StepAngular(t *testing.T) {
	w := NewWorld()
	b := NewBody(State{Mass: 1, Inertia: 2})
	w.AddBody(b)

	b.AddForceTorque(mgl64.Vec3{}, mgl64.Vec3{0, 4, 0})
	w.Step(0.5)

	s := b.State()
	if !vec3AlmostEqual(s.AngularVelocity, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("AngularVelocity = %v, want (0,1,0)", s.AngularVelocity)
	}
	if math.Abs(s.Orientation.Len()-1) > 1e-12 {
		t.Errorf("Orientation not normalized: |q| = %v", s.Orientation.Len())
	}
}

func TestWorld_StepClearsAccumulators(t *testing.T) {
	w := NewWorld()
	b := NewBody(State{Mass: 1})
	w.AddBody(b)

	b.AddForceTorque(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 1})
	w.Step(0.1)

	if !vec3AlmostEqual(b.PendingForce(), mgl64.Vec3{}, 1e-12) {
		t.Errorf("force accumulator not cleared: %v", b.PendingForce())
	}
	if !vec3AlmostEqual(b.PendingTorque(), mgl64.Vec3{}, 1e-12) {
		t.Errorf("torque accumulator not cleared: %v", b.PendingTorque())
	}

	// No new forces: velocity coasts, position keeps integrating.
	v := b.State().Velocity
	w.Step(0.1)
	if !vec3AlmostEqual(b.State().Velocity, v, 1e-12) {
		t.Errorf("Velocity changed without forces: %v -> %v", v, b.State().Velocity)
	}
}

func TestWorld_RemoveBody(t *testing.T) {
	w := NewWorld()
	a := NewBody(State{Mass: 1})
	b := NewBody(State{Mass: 1})
	w.AddBody(a)
	w.AddBody(b)

	w.RemoveBody(a)
	if w.Bodies() != 1 {
		t.Fatalf("Bodies() = %d, want 1", w.Bodies())
	}

	// Removed body no longer integrates.
	a.AddForceTorque(mgl64.Vec3{10, 0, 0}, mgl64.Vec3{})
	w.Step(1)
	if !vec3AlmostEqual(a.State().Velocity, mgl64.Vec3{}, 1e-12) {
		t.Errorf("removed body integrated: velocity %v", a.State().Velocity)
	}
}

func TestWorld_ZeroMassBodyIsStatic(t *testing.T) {
	w := NewWorld()
	b := NewBody(State{Mass: 0})
	w.AddBody(b)

	b.AddForceTorque(mgl64.Vec3{100, 0, 0}, mgl64.Vec3{})
	w.Step(1)

	if !vec3AlmostEqual(b.State().Velocity, mgl64.Vec3{}, 1e-12) {
		t.Errorf("zero-mass body moved: velocity %v", b.State().Velocity)
	}
}
