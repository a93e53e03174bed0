package flight

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
)

// SurfaceBasedModel computes lift and drag per surface at the local
// airflow each surface actually sees. A surface swept through the air by
// angular velocity alone generates a force opposing that rotation, so
// rotational damping falls out of the model instead of needing a tuned
// damping constant.
type SurfaceBasedModel struct{}

// Forces implements ForceModel. Per-surface forces act at each surface's
// attachment point; the contributions are summed into one equivalent
// (force, torque) pair about the center of mass, so submission to the
// integrator is identical to General mode. The sum is commutative and the
// result does not depend on surface order.
func (SurfaceBasedModel) Forces(st physics.State, ac *Aircraft) (force, torque mgl64.Vec3) {
	vBody := st.WorldToBody(st.Velocity)
	wBody := st.WorldToBody(st.AngularVelocity)

	var sumForce, sumTorque mgl64.Vec3

	for _, s := range ac.Surfaces {
		// Local airflow at the attachment point: translation plus the
		// velocity contributed by rotating about the center of mass.
		local := vBody.Add(wBody.Cross(s.Attachment))
		speed := local.Len()
		if speed < speedEpsilon {
			continue
		}

		dragDir := local.Mul(-1 / speed)
		alpha := surfaceAlpha(dragDir, s.Normal) + s.deflection

		cl, cd := s.Airfoil.Sample(alpha)

		if s.FlapRatio > 0 && s.MaxDeflection > 0 {
			cl += math.Sqrt(s.FlapRatio) * flapClMax * (s.deflection / s.MaxDeflection)
		}
		if s.Span > 0 {
			cd += cl * cl / (math.Pi * s.aspectRatio() * s.Efficiency)
		}
		cd *= ac.dragFactor

		q := dynamicTerm(s.Area, speed)

		f := dragDir.Mul(cd * q)
		if liftDir, ok := liftDirection(dragDir, s.Normal); ok {
			f = f.Add(liftDir.Mul(cl * q))
		}

		sumForce = sumForce.Add(f)
		sumTorque = sumTorque.Add(s.Attachment.Cross(f))
	}

	return st.BodyToWorld(sumForce), st.BodyToWorld(sumTorque)
}
