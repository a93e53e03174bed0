// Package telemetry derives read-only display values (speed, altitude,
// attitude) from a kinematic snapshot for HUD and logging consumers. It
// never mutates or retains simulation state.
package telemetry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
)

// Frame is one telemetry reading. Angles are in degrees.
type Frame struct {
	Speed    float64 `json:"speed"`    // m/s
	Altitude float64 `json:"altitude"` // meters above world origin plane
	Pitch    float64 `json:"pitch"`
	Roll     float64 `json:"roll"` // positive with the right wing down
	Heading  float64 `json:"heading"` // 0° along world +Z, increasing toward +X
}

// Sample derives a Frame from a snapshot.
func Sample(st physics.State) Frame {
	forward := st.Forward()
	up := st.Up()
	right := st.BodyToWorld(mgl64.Vec3{1, 0, 0})

	heading := mgl64.RadToDeg(math.Atan2(forward.X(), forward.Z()))
	if heading < 0 {
		heading += 360
	}

	return Frame{
		Speed:    st.Speed(),
		Altitude: st.Position.Y(),
		Pitch:    mgl64.RadToDeg(math.Asin(clamp(forward.Y(), -1, 1))),
		Roll:     mgl64.RadToDeg(math.Atan2(-right.Y(), up.Y())),
		Heading:  heading,
	}
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
