package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
)

// speedEpsilon is the airflow speed below which a surface (or the whole
// aircraft in General mode) contributes nothing. Angle of attack is
// defined as zero there, which keeps a parked or near-stationary aircraft
// free of NaN directions and division by zero.
const speedEpsilon = 1e-3 // m/s

// flapClMax scales the lift gained from deflecting a flapped surface.
const flapClMax = 1.1039

// ForceModel turns a kinematic snapshot into one world-frame
// (force, torque) pair about the center of mass. Implementations must be
// interchangeable: swapping modes never requires other subsystems to
// change.
//
// Air density does not appear in the force formulas. It is folded into
// the polar coefficients along with frontal area; adding a density term
// without re-deriving every polar table would double-count it.
type ForceModel interface {
	Forces(st physics.State, ac *Aircraft) (force, torque mgl64.Vec3)
}

// dynamicTerm is the shared ½·S·v² factor of the lift and drag formulas.
func dynamicTerm(area, speed float64) float64 {
	return 0.5 * area * speed * speed
}

// liftDirection returns the unit vector perpendicular to the airflow in
// the plane spanned by the airflow and the surface normal. When the
// airflow is parallel to the normal the plane collapses and no lift
// direction exists; ok is false and the caller skips the lift term.
func liftDirection(dragDir, normal mgl64.Vec3) (mgl64.Vec3, bool) {
	lift := dragDir.Cross(normal).Cross(dragDir)
	if lift.Len() < 1e-9 {
		return mgl64.Vec3{}, false
	}
	return lift.Normalize(), true
}

// surfaceAlpha measures the angle of attack in degrees between the
// airflow direction and a surface normal: the asin of their dot product,
// so airflow striking the underside of the surface reads positive.
func surfaceAlpha(dragDir, normal mgl64.Vec3) float64 {
	dot := clamp(dragDir.Dot(normal), -1, 1)
	return mgl64.RadToDeg(math.Asin(dot))
}
