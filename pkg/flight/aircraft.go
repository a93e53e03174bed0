package flight

import (
	"fmt"

	"github.com/opd-ai/go-flightdyn/pkg/airfoil"
)

// Mode selects the force-application strategy for an aircraft. The choice
// is made at load time; both modes produce one (force, torque) pair about
// the center of mass, so nothing downstream depends on which is active.
type Mode int

const (
	// General computes one aggregate lift/drag pair for the whole
	// aircraft from a single representative polar table.
	General Mode = iota
	// SurfaceBased computes lift, drag and moment per surface, which
	// also captures rotational damping.
	SurfaceBased
)

// String returns the mode name used in config files.
func (m Mode) String() string {
	switch m {
	case SurfaceBased:
		return "surface"
	default:
		return "general"
	}
}

// ParseMode converts a config-file mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "general", "":
		return General, nil
	case "surface", "surface-based":
		return SurfaceBased, nil
	default:
		return General, fmt.Errorf("unknown force mode %q", s)
	}
}

// Default multipliers applied to the drag coefficient while gear or
// airbrake are deployed.
const (
	DefaultGearDrag     = 1.6
	DefaultAirbrakeDrag = 2.2
)

// Aircraft aggregates the surfaces, thrust limits and force mode of one
// vehicle. It is owned by exactly one simulation goroutine; nothing here
// is safe for concurrent mutation, and nothing needs to be.
type Aircraft struct {
	Name      string
	Surfaces  []*Surface
	Mode      Mode
	MaxThrust float64 // newtons
	Gravity   float64 // m/s², defaults to 9.81

	GearDrag     float64 // drag multiplier while gear is down
	AirbrakeDrag float64 // drag multiplier while airbrake is out

	model      ForceModel
	reference  *airfoil.PolarTable // largest surface's table, used by General mode
	totalArea  float64
	thrust     float64
	dragFactor float64
	gear       bool
	airbrake   bool
}

// NewAircraft builds an aircraft from validated surfaces. The
// representative polar table for General mode is the largest-area
// surface's table, which keeps the choice independent of surface order.
func NewAircraft(name string, mode Mode, maxThrust float64, surfaces []*Surface) (*Aircraft, error) {
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("aircraft %q: no aerodynamic surfaces", name)
	}

	ac := &Aircraft{
		Name:         name,
		Surfaces:     surfaces,
		Mode:         mode,
		MaxThrust:    maxThrust,
		Gravity:      9.81,
		GearDrag:     DefaultGearDrag,
		AirbrakeDrag: DefaultAirbrakeDrag,
		dragFactor:   1,
	}

	largest := surfaces[0]
	for _, s := range surfaces {
		ac.totalArea += s.Area
		if s.Area > largest.Area {
			largest = s
		}
	}
	ac.reference = largest.Airfoil

	switch mode {
	case SurfaceBased:
		ac.model = SurfaceBasedModel{}
	default:
		ac.model = GeneralModel{}
	}

	return ac, nil
}

// Model returns the force model selected at construction.
func (a *Aircraft) Model() ForceModel {
	return a.model
}

// Thrust returns the current commanded thrust magnitude in newtons.
func (a *Aircraft) Thrust() float64 {
	return a.thrust
}

// DragFactor returns the multiplier currently applied to drag
// coefficients from gear and airbrake state.
func (a *Aircraft) DragFactor() float64 {
	return a.dragFactor
}

// GearDown reports whether the landing gear is deployed.
func (a *Aircraft) GearDown() bool {
	return a.gear
}

// AirbrakeOut reports whether the airbrake is deployed.
func (a *Aircraft) AirbrakeOut() bool {
	return a.airbrake
}

// ReferenceArea returns the summed reference area of all surfaces, the
// area General mode applies its aggregate coefficients to.
func (a *Aircraft) ReferenceArea() float64 {
	return a.totalArea
}

// FindSurface returns the named surface, or nil.
func (a *Aircraft) FindSurface(name string) *Surface {
	for _, s := range a.Surfaces {
		if s.Name == name {
			return s
		}
	}
	return nil
}
