// Package engine orchestrates the simulation: it owns the physics world,
// the ECS world holding aircraft entities, and the fixed-tick loop that
// steps flight dynamics strictly before integration.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-flightdyn/pkg/config"
	"github.com/opd-ai/go-flightdyn/pkg/event"
	"github.com/opd-ai/go-flightdyn/pkg/flight"
	"github.com/opd-ai/go-flightdyn/pkg/logging"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
	"github.com/opd-ai/go-flightdyn/pkg/telemetry"
)

// Simulation is a running set of aircraft over one physics world.
type Simulation struct {
	Bus *event.Bus

	cfg      *config.SimConfig
	logger   *logging.Logger
	world    *physics.World
	entities *ecs.World
	flight   *FlightSystem
	dt       float64
	tick     uint64

	mu       sync.RWMutex
	aircraft map[string]*AircraftEntity
}

// NewSimulation builds a simulation from a configuration. Polar CSV paths
// resolve against baseDir. Any table or surface construction error aborts
// the build; the caller decides whether to retry with defaults.
func NewSimulation(cfg *config.SimConfig, baseDir string, logger *logging.Logger) (*Simulation, error) {
	if logger == nil {
		logger = logging.NewLogger()
	}
	if cfg.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %v", cfg.TickRate)
	}

	tables, err := config.BuildTables(cfg, baseDir)
	if err != nil {
		return nil, err
	}

	sim := &Simulation{
		Bus:      event.NewBus(),
		cfg:      cfg,
		logger:   logger,
		world:    physics.NewWorld(),
		entities: &ecs.World{},
		dt:       1 / cfg.TickRate,
		aircraft: make(map[string]*AircraftEntity),
	}
	sim.flight = NewFlightSystem(sim.dt)
	sim.entities.AddSystem(sim.flight)

	for _, acCfg := range cfg.Aircraft {
		built, err := config.BuildAircraft(acCfg, cfg.Gravity, tables)
		if err != nil {
			return nil, err
		}
		sim.spawn(acCfg, built)
	}

	return sim, nil
}

func (s *Simulation) spawn(acCfg config.AircraftConfig, built *flight.Aircraft) {
	body := physics.NewBody(physics.State{
		Position: mgl64.Vec3{acCfg.Position[0], acCfg.Position[1], acCfg.Position[2]},
		Velocity: mgl64.Vec3{acCfg.Velocity[0], acCfg.Velocity[1], acCfg.Velocity[2]},
		Mass:     acCfg.Mass,
		Inertia:  acCfg.Inertia,
	})

	entity := &AircraftEntity{
		BasicEntity: ecs.NewBasic(),
		Aircraft:    built,
		Body:        body,
		Step:        flight.NewStep(built, body, body),
	}

	s.mu.Lock()
	s.aircraft[built.Name] = entity
	s.mu.Unlock()

	s.world.AddBody(body)
	s.flight.Add(entity)

	s.Bus.Publish(event.NewAircraftEvent(event.AircraftSpawned, s, built.Name))
	s.logger.Info(context.Background(), "aircraft spawned",
		"aircraft", built.Name,
		"mode", built.Mode.String(),
		"surfaces", len(built.Surfaces),
	)
}

// RemoveAircraft takes an aircraft out of the simulation.
func (s *Simulation) RemoveAircraft(name string) error {
	s.mu.Lock()
	entity, ok := s.aircraft[name]
	if ok {
		delete(s.aircraft, name)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("unknown aircraft %q", name)
	}

	s.world.RemoveBody(entity.Body)
	s.flight.Remove(entity.BasicEntity)
	s.Bus.Publish(event.NewAircraftEvent(event.AircraftRemoved, s, name))
	return nil
}

// SetControls stores the control snapshot the named aircraft consumes on
// its next tick. Gear transitions are announced on the bus.
func (s *Simulation) SetControls(name string, in flight.ControlState) error {
	s.mu.RLock()
	entity, ok := s.aircraft[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("unknown aircraft %q", name)
	}

	if prev := entity.Controls(); prev.Gear != in.Gear {
		s.Bus.Publish(event.NewGearEvent(s, name, in.Gear))
	}
	entity.SetControls(in)
	return nil
}

// StepOnce advances the simulation one fixed tick: flight dynamics for
// every aircraft first, then integration, then the tick event.
func (s *Simulation) StepOnce() {
	s.entities.Update(float32(s.dt))
	s.world.Step(s.dt)
	s.tick++
	s.Bus.Publish(event.NewTickEvent(s, s.tick))
}

// Run steps the simulation at the configured tick rate until the context
// is cancelled.
func (s *Simulation) Run(ctx context.Context) error {
	s.logger.Info(ctx, "simulation running",
		"tick_rate", s.cfg.TickRate,
		"aircraft", len(s.aircraft),
	)

	ticker := time.NewTicker(time.Duration(float64(time.Second) * s.dt))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "simulation stopped", "ticks", s.tick)
			return ctx.Err()
		case <-ticker.C:
			s.StepOnce()
		}
	}
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.tick
}

// TimeStep returns the fixed timestep in seconds.
func (s *Simulation) TimeStep() float64 {
	return s.dt
}

// Aircraft returns the entity for the named aircraft.
func (s *Simulation) Aircraft(name string) (*AircraftEntity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entity, ok := s.aircraft[name]
	return entity, ok
}

// Telemetry derives a read-only telemetry frame for the named aircraft.
func (s *Simulation) Telemetry(name string) (telemetry.Frame, bool) {
	entity, ok := s.Aircraft(name)
	if !ok {
		return telemetry.Frame{}, false
	}
	return telemetry.Sample(entity.Body.State()), true
}
