package flight

// ControlState is the normalized control input snapshot for one tick,
// produced by the input-mapping layer and consumed read-only here.
// Aileron, Elevator and Rudder are in [-1, 1]; Throttle is in [0, 1].
type ControlState struct {
	Aileron  float64 `json:"aileron"`
	Elevator float64 `json:"elevator"`
	Rudder   float64 `json:"rudder"`
	Throttle float64 `json:"throttle"`
	Gear     bool    `json:"gear"`
	Airbrake bool    `json:"airbrake"`
}

// clamped returns a copy with every axis bounded to its valid range, so a
// misbehaving input source degrades instead of commanding impossible
// deflections.
func (c ControlState) clamped() ControlState {
	c.Aileron = clamp(c.Aileron, -1, 1)
	c.Elevator = clamp(c.Elevator, -1, 1)
	c.Rudder = clamp(c.Rudder, -1, 1)
	c.Throttle = clamp(c.Throttle, 0, 1)
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
