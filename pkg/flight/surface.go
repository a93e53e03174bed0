// Package flight computes aerodynamic forces for rigid-body aircraft: named
// lifting surfaces with polar-table coefficients, rate-limited control
// actuation, and two interchangeable force models feeding the physics layer.
package flight

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/airfoil"
)

// ControlAxis identifies which control input drives a surface's deflection.
type ControlAxis int

const (
	ControlNone ControlAxis = iota
	ControlAileron
	ControlElevator
	ControlRudder
)

// String returns the axis name for logs and config files.
func (a ControlAxis) String() string {
	switch a {
	case ControlAileron:
		return "aileron"
	case ControlElevator:
		return "elevator"
	case ControlRudder:
		return "rudder"
	default:
		return "none"
	}
}

// DegenerateGeometryError reports a surface definition the force model
// cannot use: geometry that would collapse the lift/drag computation.
// Fatal at construction, matching the load-time error policy.
type DegenerateGeometryError struct {
	Surface string
	Reason  string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("degenerate surface geometry %q: %s", e.Surface, e.Reason)
}

// Surface is one named aerodynamic region of an aircraft: a wing, an
// elevator half, a rudder. Each surface owns its deflection state; the
// polar table it references is shared and read-only.
type Surface struct {
	Name       string
	Area       float64 // reference area, m²
	Span       float64 // wingspan, m; enables induced drag when set
	Efficiency float64 // Oswald efficiency factor, defaults to 1
	Airfoil    *airfoil.PolarTable
	Attachment mgl64.Vec3 // body-frame offset from center of mass
	Normal     mgl64.Vec3 // body-frame unit "up" of the surface

	Axis          ControlAxis
	Gain          float64 // deflection sign/scale per axis unit, e.g. -1 for a left aileron
	MaxDeflection float64 // degrees
	ActuationRate float64 // degrees per second
	FlapRatio     float64 // flapped chord fraction, 0 for fixed surfaces

	deflection float64 // degrees, bounded to ±MaxDeflection
}

// NewSurface validates and normalizes a surface definition. The Normal is
// renormalized to unit length; a zero area or zero-length normal is a
// *DegenerateGeometryError.
func NewSurface(s Surface) (*Surface, error) {
	if s.Area <= 0 {
		return nil, &DegenerateGeometryError{Surface: s.Name, Reason: "non-positive reference area"}
	}
	if s.Normal.Len() < 1e-9 {
		return nil, &DegenerateGeometryError{Surface: s.Name, Reason: "zero-length normal axis"}
	}
	if s.Airfoil == nil {
		return nil, fmt.Errorf("surface %q: no polar table", s.Name)
	}
	if s.MaxDeflection < 0 {
		return nil, &DegenerateGeometryError{Surface: s.Name, Reason: "negative deflection limit"}
	}

	s.Normal = s.Normal.Normalize()
	if s.Efficiency <= 0 {
		s.Efficiency = 1
	}
	if s.Axis != ControlNone && s.Gain == 0 {
		s.Gain = 1
	}
	if s.ActuationRate <= 0 {
		s.ActuationRate = defaultActuationRate
	}
	s.deflection = 0

	return &s, nil
}

// defaultActuationRate bounds surfaces whose definition omits a hinge rate.
const defaultActuationRate = 90.0 // degrees per second

// Deflection returns the current deflection in degrees.
func (s *Surface) Deflection() float64 {
	return s.deflection
}

// setDeflection clamps to the surface's travel limits.
func (s *Surface) setDeflection(deg float64) {
	if deg > s.MaxDeflection {
		deg = s.MaxDeflection
	}
	if deg < -s.MaxDeflection {
		deg = -s.MaxDeflection
	}
	s.deflection = deg
}

// aspectRatio is span²/area, defined only when a span is configured.
func (s *Surface) aspectRatio() float64 {
	return s.Span * s.Span / s.Area
}
