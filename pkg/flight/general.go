package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
)

// GeneralModel computes one aggregate lift/drag pair for the whole
// aircraft. One angle of attack, one representative polar table, one
// force through the center of mass, zero torque. Cheap, and adequate for
// distant or non-player aircraft.
type GeneralModel struct{}

// Forces implements ForceModel.
func (GeneralModel) Forces(st physics.State, ac *Aircraft) (force, torque mgl64.Vec3) {
	speed := st.Speed()
	if speed < speedEpsilon {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}

	vBody := st.WorldToBody(st.Velocity)

	// Aircraft-level angle of attack: the angle between the body forward
	// axis and the velocity projected into the pitch plane. Positive when
	// the nose points above the flight path.
	alpha := mgl64.RadToDeg(math.Atan2(-vBody.Y(), vBody.Z()))

	cl, cd := ac.reference.Sample(alpha)
	cd *= ac.dragFactor

	q := dynamicTerm(ac.totalArea, speed)
	dragDir := vBody.Mul(-1 / speed)

	forceBody := dragDir.Mul(cd * q)
	if liftDir, ok := liftDirection(dragDir, mgl64.Vec3{0, 1, 0}); ok {
		forceBody = forceBody.Add(liftDir.Mul(cl * q))
	}

	return st.BodyToWorld(forceBody), mgl64.Vec3{}
}
