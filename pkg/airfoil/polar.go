// Package airfoil provides tabulated lift/drag polar data for aerodynamic
// profiles. A PolarTable maps angle of attack to a (lift, drag) coefficient
// pair using nearest-sample lookup over digitized wind-tunnel data, the kind
// published at airfoiltools.com for profiles such as NACA 64A204.
package airfoil

import (
	"fmt"
	"math"
	"sort"
)

// PolarSample is one row of polar data: the lift and drag coefficients
// measured at a single angle of attack (degrees).
type PolarSample struct {
	Alpha float64
	Lift  float64
	Drag  float64
}

// InvalidTableError reports polar data that cannot form a usable table.
// Loading must fail rather than substitute a default table, so authoring
// mistakes in polar files surface at load time.
type InvalidTableError struct {
	Reason string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("invalid polar table: %s", e.Reason)
}

// PolarTable is an immutable, ordered sequence of polar samples for one
// airfoil profile. Tables are built once at load time and may be shared
// read-only by any number of surfaces; they are never mutated afterwards,
// so concurrent sampling needs no synchronization.
type PolarTable struct {
	samples  []PolarSample
	minAlpha float64
	maxAlpha float64
}

// NewPolarTable builds a table from samples ordered by strictly increasing
// angle of attack. The samples are copied; the caller's slice stays free.
func NewPolarTable(samples []PolarSample) (*PolarTable, error) {
	if len(samples) == 0 {
		return nil, &InvalidTableError{Reason: "no samples"}
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Alpha <= samples[i-1].Alpha {
			return nil, &InvalidTableError{
				Reason: fmt.Sprintf("samples not strictly increasing at index %d (%.4f after %.4f)",
					i, samples[i].Alpha, samples[i-1].Alpha),
			}
		}
	}

	owned := make([]PolarSample, len(samples))
	copy(owned, samples)

	return &PolarTable{
		samples:  owned,
		minAlpha: owned[0].Alpha,
		maxAlpha: owned[len(owned)-1].Alpha,
	}, nil
}

// Sample returns the lift and drag coefficients of the sample nearest to
// alpha (degrees). Angles outside the recorded range saturate to the
// boundary sample; there is no interpolation and no extrapolation, which
// keeps coefficients bounded at stall and post-stall angles where polar
// data is least reliable.
func (t *PolarTable) Sample(alpha float64) (lift, drag float64) {
	i := t.index(alpha)
	return t.samples[i].Lift, t.samples[i].Drag
}

// MinAlpha returns the lowest recorded angle of attack.
func (t *PolarTable) MinAlpha() float64 { return t.minAlpha }

// MaxAlpha returns the highest recorded angle of attack.
func (t *PolarTable) MaxAlpha() float64 { return t.maxAlpha }

// Len returns the number of samples.
func (t *PolarTable) Len() int { return len(t.samples) }

// index finds the sample whose angle of attack is closest to alpha.
// Digitized polars are rarely evenly spaced, so this is a binary search
// over the sorted angles rather than a scaled-index shortcut. The query
// allocates nothing. Ties between two equidistant samples resolve to the
// lower angle.
func (t *PolarTable) index(alpha float64) int {
	n := len(t.samples)
	if math.IsNaN(alpha) || alpha <= t.minAlpha {
		return 0
	}
	if alpha >= t.maxAlpha {
		return n - 1
	}

	i := sort.Search(n, func(j int) bool { return t.samples[j].Alpha >= alpha })
	if alpha-t.samples[i-1].Alpha <= t.samples[i].Alpha-alpha {
		return i - 1
	}
	return i
}
