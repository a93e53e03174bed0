package flight

// Actuator maps normalized control inputs onto per-surface deflections and
// thrust. Deflections move toward their targets at each surface's bounded
// hinge rate, so a full-scale stick input takes real time to reach the
// stops instead of snapping there in one tick.
type Actuator struct {
	aircraft *Aircraft
}

// NewActuator creates an actuator driving the given aircraft.
func NewActuator(ac *Aircraft) *Actuator {
	return &Actuator{aircraft: ac}
}

// Update advances every surface toward the deflection commanded by its
// bound axis, sets thrust from throttle, and recomputes the gear/airbrake
// drag multiplier. The multiplier is derived from scratch each tick, so
// toggling a brake off restores the exact prior drag.
func (a *Actuator) Update(in ControlState, dt float64) {
	in = in.clamped()
	ac := a.aircraft

	for _, s := range ac.Surfaces {
		target := axisValue(in, s.Axis) * s.Gain * s.MaxDeflection

		delta := target - s.deflection
		maxStep := s.ActuationRate * dt
		if delta > maxStep {
			delta = maxStep
		} else if delta < -maxStep {
			delta = -maxStep
		}
		s.setDeflection(s.deflection + delta)
	}

	ac.thrust = in.Throttle * ac.MaxThrust

	factor := 1.0
	if in.Gear {
		factor *= ac.GearDrag
	}
	if in.Airbrake {
		factor *= ac.AirbrakeDrag
	}
	ac.dragFactor = factor
	ac.gear = in.Gear
	ac.airbrake = in.Airbrake
}

func axisValue(in ControlState, axis ControlAxis) float64 {
	switch axis {
	case ControlAileron:
		return in.Aileron
	case ControlElevator:
		return in.Elevator
	case ControlRudder:
		return in.Rudder
	default:
		return 0
	}
}
