package telemetry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/opd-ai/go-flightdyn/pkg/physics"
)

func TestSample_LevelFlight(t *testing.T) {
	st := physics.State{
		Position:    mgl64.Vec3{0, 1200, 0},
		Orientation: mgl64.QuatIdent(),
		Velocity:    mgl64.Vec3{0, 0, 80},
	}

	f := Sample(st)

	if f.Speed != 80 {
		t.Errorf("Speed = %v, want 80", f.Speed)
	}
	if f.Altitude != 1200 {
		t.Errorf("Altitude = %v, want 1200", f.Altitude)
	}
	if math.Abs(f.Pitch) > 1e-9 || math.Abs(f.Roll) > 1e-9 || math.Abs(f.Heading) > 1e-9 {
		t.Errorf("attitude = (%v, %v, %v), want level on heading 0", f.Pitch, f.Roll, f.Heading)
	}
}

func TestSample_Attitudes(t *testing.T) {
	tests := []struct {
		name        string
		orientation mgl64.Quat
		wantPitch   float64
		wantRoll    float64
		wantHeading float64
	}{
		{
			name:        "pitched_up_30",
			orientation: mgl64.QuatRotate(mgl64.DegToRad(30), mgl64.Vec3{-1, 0, 0}),
			wantPitch:   30,
		},
		{
			name:        "heading_east_90",
			orientation: mgl64.QuatRotate(mgl64.DegToRad(90), mgl64.Vec3{0, 1, 0}),
			wantHeading: 90,
		},
		{
			name:        "heading_west_270",
			orientation: mgl64.QuatRotate(mgl64.DegToRad(-90), mgl64.Vec3{0, 1, 0}),
			wantHeading: 270,
		},
		{
			name:        "rolled_right_45",
			orientation: mgl64.QuatRotate(mgl64.DegToRad(-45), mgl64.Vec3{0, 0, 1}),
			wantRoll:    45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Sample(physics.State{Orientation: tt.orientation})
			if math.Abs(f.Pitch-tt.wantPitch) > 1e-6 {
				t.Errorf("Pitch = %v, want %v", f.Pitch, tt.wantPitch)
			}
			if math.Abs(f.Roll-tt.wantRoll) > 1e-6 {
				t.Errorf("Roll = %v, want %v", f.Roll, tt.wantRoll)
			}
			if math.Abs(f.Heading-tt.wantHeading) > 1e-6 && !(tt.wantHeading == 0 && math.Abs(f.Heading-360) < 1e-6) {
				t.Errorf("Heading = %v, want %v", f.Heading, tt.wantHeading)
			}
		})
	}
}
