package engine

import (
	"sync"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-flightdyn/pkg/flight"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
)

// AircraftEntity couples one aircraft, its rigid body and its per-tick
// step into an ECS entity. Each entity is stepped by exactly one
// goroutine per tick; only the control snapshot crosses goroutines, so
// it sits behind its own mutex.
type AircraftEntity struct {
	ecs.BasicEntity
	Aircraft *flight.Aircraft
	Body     *physics.Body
	Step     *flight.Step

	mu       sync.Mutex
	controls flight.ControlState
}

// SetControls replaces the control snapshot consumed on the next tick.
func (e *AircraftEntity) SetControls(in flight.ControlState) {
	e.mu.Lock()
	e.controls = in
	e.mu.Unlock()
}

// Controls returns the pending control snapshot.
func (e *AircraftEntity) Controls() flight.ControlState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.controls
}

// FlightSystem runs every aircraft's flight-dynamics step once per fixed
// tick. Aircraft share no mutable state with each other, so the steps run
// in parallel, one goroutine each, and the system joins them all before
// returning — forces are fully submitted before the integrator runs.
type FlightSystem struct {
	dt       float64
	entities []*AircraftEntity
}

// NewFlightSystem creates a system stepping at the fixed timestep dt.
func NewFlightSystem(dt float64) *FlightSystem {
	return &FlightSystem{dt: dt}
}

// Add registers an aircraft entity.
func (s *FlightSystem) Add(e *AircraftEntity) {
	s.entities = append(s.entities, e)
}

// Update implements ecs.System. The ECS hands down a float32 dt; the
// fixed physics timestep chosen at construction is authoritative.
func (s *FlightSystem) Update(_ float32) {
	var wg sync.WaitGroup
	for _, e := range s.entities {
		wg.Add(1)
		go func(e *AircraftEntity) {
			defer wg.Done()
			e.Step.Tick(e.Controls(), s.dt)
		}(e)
	}
	wg.Wait()
}

// Remove implements ecs.System.
func (s *FlightSystem) Remove(basic ecs.BasicEntity) {
	for i, e := range s.entities {
		if e.ID() == basic.ID() {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			return
		}
	}
}
