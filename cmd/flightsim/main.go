// Command flightsim runs the flight-dynamics simulation headless at a
// fixed tick rate, logging periodic telemetry for every configured
// aircraft until interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/opd-ai/go-flightdyn/pkg/config"
	"github.com/opd-ai/go-flightdyn/pkg/engine"
	"github.com/opd-ai/go-flightdyn/pkg/event"
	"github.com/opd-ai/go-flightdyn/pkg/flight"
	"github.com/opd-ai/go-flightdyn/pkg/logging"
)

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), "")

	configPath := flag.String("config", "flightdyn.json", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	throttle := flag.Float64("throttle", 0.75, "Constant throttle setting [0,1]")
	telemetryEvery := flag.Duration("telemetry", time.Second, "Telemetry log interval")
	maxTicks := flag.Uint64("ticks", 0, "Stop after this many ticks (0 = run until interrupted)")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	var simConfig *config.SimConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", *configPath,
		)
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			logger.Error(ctx, "Failed to load configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
	}

	if err := config.ApplyEnvironmentOverrides(simConfig); err != nil {
		logger.Error(ctx, "Failed to apply environment configuration", err)
		os.Exit(1)
	}

	sim, err := engine.NewSimulation(simConfig, filepath.Dir(*configPath), logger)
	if err != nil {
		logger.Error(ctx, "Failed to build simulation", err)
		os.Exit(1)
	}

	// Hold a constant throttle on every aircraft; a real installation
	// replaces this with the input-mapping layer.
	controls := flight.ControlState{Throttle: *throttle}
	for _, ac := range simConfig.Aircraft {
		if err := sim.SetControls(ac.Name, controls); err != nil {
			logger.Error(ctx, "Failed to set controls", err, "aircraft", ac.Name)
		}
	}

	// Periodic telemetry through the tick event stream.
	interval := uint64(telemetryEvery.Seconds() / sim.TimeStep())
	if interval == 0 {
		interval = 1
	}
	sim.Bus.Subscribe(event.TickCompleted, func(e event.Event) {
		tick := e.(*event.TickEvent).Tick
		if tick%interval != 0 {
			return
		}
		for _, ac := range simConfig.Aircraft {
			if frame, ok := sim.Telemetry(ac.Name); ok {
				logger.Info(ctx, "telemetry",
					"aircraft", ac.Name,
					"tick", tick,
					"speed", frame.Speed,
					"altitude", frame.Altitude,
					"pitch", frame.Pitch,
					"roll", frame.Roll,
					"heading", frame.Heading,
				)
			}
		}
	})

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *maxTicks > 0 {
		for sim.Tick() < *maxTicks && runCtx.Err() == nil {
			sim.StepOnce()
		}
	} else if err := sim.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error(ctx, "Simulation stopped with error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Shutdown complete", "ticks", sim.Tick())
}
