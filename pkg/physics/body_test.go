package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec3AlmostEqual(a, b mgl64.Vec3, tol float64) bool {
	return math.Abs(a.X()-b.X()) <= tol &&
		math.Abs(a.Y()-b.Y()) <= tol &&
		math.Abs(a.Z()-b.Z()) <= tol
}

func TestNewBody_Defaults(t *testing.T) {
	b := NewBody(State{Mass: 100})

	s := b.State()
	if s.Orientation != mgl64.QuatIdent() {
		t.Errorf("Orientation = %v, want identity", s.Orientation)
	}
	if s.Inertia != 100 {
		t.Errorf("Inertia = %v, want mass fallback 100", s.Inertia)
	}
}

func TestState_FrameTransforms(t *testing.T) {
	// 90° yaw about +Y turns body forward (+Z) into world +X.
	s := State{Orientation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})}

	forward := s.Forward()
	if !vec3AlmostEqual(forward, mgl64.Vec3{1, 0, 0}, 1e-12) {
		t.Errorf("Forward() = %v, want +X", forward)
	}

	up := s.Up()
	if !vec3AlmostEqual(up, mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("Up() = %v, want +Y", up)
	}

	// Round trip through both transforms returns the original vector.
	v := mgl64.Vec3{1, 2, 3}
	back := s.WorldToBody(s.BodyToWorld(v))
	if !vec3AlmostEqual(back, v, 1e-12) {
		t.Errorf("WorldToBody(BodyToWorld(v)) = %v, want %v", back, v)
	}
}

func TestBody_AddForceTorque(t *testing.T) {
	b := NewBody(State{Mass: 10})

	b.AddForceTorque(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 2, 0})
	b.AddForceTorque(mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, -1, 0})

	if !vec3AlmostEqual(b.PendingForce(), mgl64.Vec3{1, 3, 0}, 1e-12) {
		t.Errorf("PendingForce() = %v, want (1,3,0)", b.PendingForce())
	}
	if !vec3AlmostEqual(b.PendingTorque(), mgl64.Vec3{0, 1, 0}, 1e-12) {
		t.Errorf("PendingTorque() = %v, want (0,1,0)", b.PendingTorque())
	}
}

func TestBody_AddForceAtPoint(t *testing.T) {
	b := NewBody(State{Mass: 10, Position: mgl64.Vec3{5, 0, 0}})

	// Upward force one meter behind the center of mass pitches the nose up:
	// arm (0,0,-1) × force (0,10,0) = (10,0,0).
	b.AddForceAtPoint(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{5, 0, -1})

	if !vec3AlmostEqual(b.PendingForce(), mgl64.Vec3{0, 10, 0}, 1e-12) {
		t.Errorf("PendingForce() = %v, want (0,10,0)", b.PendingForce())
	}
	if !vec3AlmostEqual(b.PendingTorque(), mgl64.Vec3{10, 0, 0}, 1e-12) {
		t.Errorf("PendingTorque() = %v, want (10,0,0)", b.PendingTorque())
	}
}

func TestBody_ForceAtCenterOfMassHasNoTorque(t *testing.T) {
	b := NewBody(State{Mass: 10, Position: mgl64.Vec3{1, 2, 3}})

	b.AddForceAtPoint(mgl64.Vec3{0, 0, 7}, mgl64.Vec3{1, 2, 3})

	if !vec3AlmostEqual(b.PendingTorque(), mgl64.Vec3{}, 1e-12) {
		t.Errorf("PendingTorque() = %v, want zero", b.PendingTorque())
	}
}
