// Package config loads the declarative flight-dynamics definitions: per
// aircraft, a list of aerodynamic surfaces referencing named airfoil polar
// sources. Definitions are JSON files; polar sources are CSV tables of
// (alpha, cl, cd) rows. Loading happens once at level load, and any
// malformed definition fails loudly so authoring bugs are not masked by
// silent defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/airfoil"
	"github.com/opd-ai/go-flightdyn/pkg/flight"
)

// SimConfig is the root configuration for a simulation run.
type SimConfig struct {
	TickRate float64          `json:"tickRate"` // physics ticks per second
	Gravity  float64          `json:"gravity"`  // m/s²
	Polars   []PolarSource    `json:"polars"`
	Aircraft []AircraftConfig `json:"aircraft"`
}

// PolarSource names one airfoil polar table. Either Path points at a CSV
// file of alpha,cl,cd rows, or Samples embeds the rows directly.
type PolarSource struct {
	Name    string       `json:"name"`
	Path    string       `json:"path,omitempty"`
	Samples [][3]float64 `json:"samples,omitempty"`
}

// AircraftConfig describes one aircraft.
type AircraftConfig struct {
	Name      string          `json:"name"`
	Mass      float64         `json:"mass"`      // kg
	Inertia   float64         `json:"inertia"`   // kg·m², 0 falls back to mass
	MaxThrust float64         `json:"maxThrust"` // newtons
	Mode      string          `json:"mode"`      // "general" or "surface"
	Position  [3]float64      `json:"position"`
	Velocity  [3]float64      `json:"velocity"`
	Surfaces  []SurfaceConfig `json:"surfaces"`
}

// SurfaceConfig describes one aerodynamic surface of an aircraft.
type SurfaceConfig struct {
	Name          string     `json:"name"`
	Airfoil       string     `json:"airfoil"` // PolarSource name
	Area          float64    `json:"area"`    // m²
	Span          float64    `json:"span,omitempty"`
	Attachment    [3]float64 `json:"attachment"`
	Normal        [3]float64 `json:"normal"`
	Axis          string     `json:"axis,omitempty"` // aileron, elevator, rudder
	Gain          float64    `json:"gain,omitempty"`
	MaxDeflection float64    `json:"maxDeflection,omitempty"` // degrees
	ActuationRate float64    `json:"actuationRate,omitempty"` // degrees/s
	FlapRatio     float64    `json:"flapRatio,omitempty"`
}

// LoadConfig loads a configuration from a file.
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.TickRate <= 0 {
		config.TickRate = 60
	}
	if config.Gravity <= 0 {
		config.Gravity = 9.81
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file.
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnvironmentOverrides replaces selected values from environment
// variables: FLIGHTDYN_TICK_RATE and FLIGHTDYN_GRAVITY.
func ApplyEnvironmentOverrides(config *SimConfig) error {
	if v, err := getEnvFloat("FLIGHTDYN_TICK_RATE"); err != nil {
		return err
	} else if v > 0 {
		config.TickRate = v
	}
	if v, err := getEnvFloat("FLIGHTDYN_GRAVITY"); err != nil {
		return err
	} else if v > 0 {
		config.Gravity = v
	}
	return nil
}

func getEnvFloat(key string) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

// BuildTables constructs every named polar table. Relative CSV paths
// resolve against baseDir. Table construction errors propagate to the
// caller, which owns the abort-or-fallback decision for the level load.
func BuildTables(config *SimConfig, baseDir string) (map[string]*airfoil.PolarTable, error) {
	tables := make(map[string]*airfoil.PolarTable, len(config.Polars))
	for _, src := range config.Polars {
		if _, exists := tables[src.Name]; exists {
			return nil, fmt.Errorf("duplicate polar source %q", src.Name)
		}

		var samples []airfoil.PolarSample
		switch {
		case len(src.Samples) > 0:
			for _, row := range src.Samples {
				samples = append(samples, airfoil.PolarSample{Alpha: row[0], Lift: row[1], Drag: row[2]})
			}
		case src.Path != "":
			path := src.Path
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			var err error
			samples, err = LoadPolarCSV(path)
			if err != nil {
				return nil, fmt.Errorf("polar source %q: %w", src.Name, err)
			}
		}

		table, err := airfoil.NewPolarTable(samples)
		if err != nil {
			return nil, fmt.Errorf("polar source %q: %w", src.Name, err)
		}
		tables[src.Name] = table
	}
	return tables, nil
}

// BuildAircraft turns an aircraft definition into a flight.Aircraft,
// resolving airfoil references against the named tables.
func BuildAircraft(ac AircraftConfig, gravity float64, tables map[string]*airfoil.PolarTable) (*flight.Aircraft, error) {
	mode, err := flight.ParseMode(ac.Mode)
	if err != nil {
		return nil, fmt.Errorf("aircraft %q: %w", ac.Name, err)
	}

	surfaces := make([]*flight.Surface, 0, len(ac.Surfaces))
	for _, sc := range ac.Surfaces {
		table, ok := tables[sc.Airfoil]
		if !ok {
			return nil, fmt.Errorf("aircraft %q surface %q: unknown airfoil %q", ac.Name, sc.Name, sc.Airfoil)
		}
		axis, err := parseAxis(sc.Axis)
		if err != nil {
			return nil, fmt.Errorf("aircraft %q surface %q: %w", ac.Name, sc.Name, err)
		}

		surface, err := flight.NewSurface(flight.Surface{
			Name:          sc.Name,
			Area:          sc.Area,
			Span:          sc.Span,
			Airfoil:       table,
			Attachment:    vec3(sc.Attachment),
			Normal:        vec3(sc.Normal),
			Axis:          axis,
			Gain:          sc.Gain,
			MaxDeflection: sc.MaxDeflection,
			ActuationRate: sc.ActuationRate,
			FlapRatio:     sc.FlapRatio,
		})
		if err != nil {
			return nil, fmt.Errorf("aircraft %q: %w", ac.Name, err)
		}
		surfaces = append(surfaces, surface)
	}

	built, err := flight.NewAircraft(ac.Name, mode, ac.MaxThrust, surfaces)
	if err != nil {
		return nil, err
	}
	if gravity > 0 {
		built.Gravity = gravity
	}
	return built, nil
}

func parseAxis(s string) (flight.ControlAxis, error) {
	switch s {
	case "", "none":
		return flight.ControlNone, nil
	case "aileron":
		return flight.ControlAileron, nil
	case "elevator":
		return flight.ControlElevator, nil
	case "rudder":
		return flight.ControlRudder, nil
	default:
		return flight.ControlNone, fmt.Errorf("unknown control axis %q", s)
	}
}

func vec3(v [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}
