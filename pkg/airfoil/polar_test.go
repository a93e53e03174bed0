package airfoil

import (
	"errors"
	"math"
	"testing"
)

// naca64a204 is a short slice of digitized polar data used across the tests.
var naca64a204 = []PolarSample{
	{Alpha: 6.500, Lift: 0.5065, Drag: 0.05769},
	{Alpha: 8.250, Lift: 0.9176, Drag: 0.03088},
	{Alpha: 8.750, Lift: 0.9170, Drag: 0.03303},
}

func TestNewPolarTable_Errors(t *testing.T) {
	tests := []struct {
		name    string
		samples []PolarSample
		wantErr bool
	}{
		{
			name:    "empty_samples",
			samples: nil,
			wantErr: true,
		},
		{
			name: "duplicate_alpha",
			samples: []PolarSample{
				{Alpha: 1.0, Lift: 0.1, Drag: 0.01},
				{Alpha: 1.0, Lift: 0.2, Drag: 0.02},
			},
			wantErr: true,
		},
		{
			name: "decreasing_alpha",
			samples: []PolarSample{
				{Alpha: 2.0, Lift: 0.1, Drag: 0.01},
				{Alpha: 1.0, Lift: 0.2, Drag: 0.02},
			},
			wantErr: true,
		},
		{
			name:    "single_sample",
			samples: []PolarSample{{Alpha: 0, Lift: 0.3, Drag: 0.02}},
			wantErr: false,
		},
		{
			name:    "valid_table",
			samples: naca64a204,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewPolarTable(tt.samples)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewPolarTable() expected error, got nil")
				}
				var invalid *InvalidTableError
				if !errors.As(err, &invalid) {
					t.Errorf("NewPolarTable() error = %v, want *InvalidTableError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPolarTable() unexpected error: %v", err)
			}
			if table.Len() != len(tt.samples) {
				t.Errorf("Len() = %d, want %d", table.Len(), len(tt.samples))
			}
		})
	}
}

func TestPolarTable_SampleExactAngles(t *testing.T) {
	table, err := NewPolarTable(naca64a204)
	if err != nil {
		t.Fatalf("NewPolarTable() error: %v", err)
	}

	// Sampling at a recorded angle must return exactly that sample's
	// coefficients, never an interpolated value.
	for _, s := range naca64a204 {
		lift, drag := table.Sample(s.Alpha)
		if lift != s.Lift || drag != s.Drag {
			t.Errorf("Sample(%v) = (%v, %v), want (%v, %v)",
				s.Alpha, lift, drag, s.Lift, s.Drag)
		}
	}
}

func TestPolarTable_SampleWorkedExample(t *testing.T) {
	table, err := NewPolarTable(naca64a204)
	if err != nil {
		t.Fatalf("NewPolarTable() error: %v", err)
	}

	lift, drag := table.Sample(8.25)
	if lift != 0.9176 || drag != 0.03088 {
		t.Errorf("Sample(8.25) = (%v, %v), want (0.9176, 0.03088)", lift, drag)
	}
}

func TestPolarTable_SampleSaturation(t *testing.T) {
	table, err := NewPolarTable(naca64a204)
	if err != nil {
		t.Fatalf("NewPolarTable() error: %v", err)
	}

	tests := []struct {
		name     string
		alpha    float64
		wantLift float64
		wantDrag float64
	}{
		{name: "far_below_min", alpha: -90, wantLift: 0.5065, wantDrag: 0.05769},
		{name: "just_below_min", alpha: 6.4, wantLift: 0.5065, wantDrag: 0.05769},
		{name: "just_above_max", alpha: 8.8, wantLift: 0.9170, wantDrag: 0.03303},
		{name: "far_above_max", alpha: 180, wantLift: 0.9170, wantDrag: 0.03303},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lift, drag := table.Sample(tt.alpha)
			if lift != tt.wantLift || drag != tt.wantDrag {
				t.Errorf("Sample(%v) = (%v, %v), want (%v, %v)",
					tt.alpha, lift, drag, tt.wantLift, tt.wantDrag)
			}
			if math.IsNaN(lift) || math.IsNaN(drag) {
				t.Errorf("Sample(%v) produced NaN", tt.alpha)
			}
		})
	}
}

func TestPolarTable_DegenerateSingleSample(t *testing.T) {
	table, err := NewPolarTable([]PolarSample{{Alpha: 4.0, Lift: 0.42, Drag: 0.021}})
	if err != nil {
		t.Fatalf("NewPolarTable() error: %v", err)
	}

	for _, alpha := range []float64{-1e6, -4, 0, 4, 90, 1e6} {
		lift, drag := table.Sample(alpha)
		if lift != 0.42 || drag != 0.021 {
			t.Errorf("Sample(%v) = (%v, %v), want sample 0 coefficients", alpha, lift, drag)
		}
	}
}

func TestPolarTable_Bounds(t *testing.T) {
	table, err := NewPolarTable(naca64a204)
	if err != nil {
		t.Fatalf("NewPolarTable() error: %v", err)
	}
	if table.MinAlpha() != 6.5 {
		t.Errorf("MinAlpha() = %v, want 6.5", table.MinAlpha())
	}
	if table.MaxAlpha() != 8.75 {
		t.Errorf("MaxAlpha() = %v, want 8.75", table.MaxAlpha())
	}
}

func TestPolarTable_CopiesInput(t *testing.T) {
	samples := []PolarSample{
		{Alpha: 0, Lift: 0.1, Drag: 0.01},
		{Alpha: 10, Lift: 0.9, Drag: 0.05},
	}
	table, err := NewPolarTable(samples)
	if err != nil {
		t.Fatalf("NewPolarTable() error: %v", err)
	}

	// Mutating the caller's slice must not affect the table.
	samples[0].Lift = 99

	lift, _ := table.Sample(0)
	if lift != 0.1 {
		t.Errorf("Sample(0) lift = %v after caller mutation, want 0.1", lift)
	}
}
