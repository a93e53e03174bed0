package config

// defaultPolar is a digitized polar for a conventional cambered profile,
// embedded so the default configuration flies without external files.
var defaultPolar = [][3]float64{
	{-18.0, -1.10, 0.130},
	{-15.0, -1.00, 0.090},
	{-12.0, -0.90, 0.055},
	{-9.0, -0.66, 0.035},
	{-6.0, -0.35, 0.022},
	{-3.0, -0.02, 0.014},
	{0.0, 0.25, 0.011},
	{3.0, 0.58, 0.013},
	{6.0, 0.90, 0.019},
	{9.0, 1.18, 0.031},
	{12.0, 1.40, 0.050},
	{15.0, 1.45, 0.080},
	{18.0, 1.25, 0.120},
}

// DefaultConfig returns a flyable single-aircraft configuration: a light
// trainer with wing halves, elevator and rudder, running the
// surface-based force model.
func DefaultConfig() *SimConfig {
	return &SimConfig{
		TickRate: 60,
		Gravity:  9.81,
		Polars: []PolarSource{
			{Name: "trainer-wing", Samples: defaultPolar},
		},
		Aircraft: []AircraftConfig{
			{
				Name:      "trainer-1",
				Mass:      1100,
				Inertia:   3400,
				MaxThrust: 18000,
				Mode:      "surface",
				Position:  [3]float64{0, 1000, 0},
				Velocity:  [3]float64{0, 0, 60},
				Surfaces: []SurfaceConfig{
					{
						Name: "wing_l", Airfoil: "trainer-wing",
						Area: 8, Span: 5.2,
						Attachment: [3]float64{-2.4, 0, 0},
						Normal:     [3]float64{0, 1, 0},
						Axis:       "aileron", Gain: -1,
						MaxDeflection: 15, ActuationRate: 90,
						FlapRatio: 0.2,
					},
					{
						Name: "wing_r", Airfoil: "trainer-wing",
						Area: 8, Span: 5.2,
						Attachment: [3]float64{2.4, 0, 0},
						Normal:     [3]float64{0, 1, 0},
						Axis:       "aileron", Gain: 1,
						MaxDeflection: 15, ActuationRate: 90,
						FlapRatio: 0.2,
					},
					{
						Name: "elevator", Airfoil: "trainer-wing",
						Area:       2.5,
						Attachment: [3]float64{0, 0, -4.6},
						Normal:     [3]float64{0, 1, 0},
						Axis:       "elevator",
						MaxDeflection: 25, ActuationRate: 120,
					},
					{
						Name: "rudder", Airfoil: "trainer-wing",
						Area:       1.4,
						Attachment: [3]float64{0, 0.6, -4.6},
						Normal:     [3]float64{1, 0, 0},
						Axis:       "rudder",
						MaxDeflection: 25, ActuationRate: 120,
					},
				},
			},
		},
	}
}
