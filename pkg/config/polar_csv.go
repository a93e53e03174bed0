package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/go-flightdyn/pkg/airfoil"
)

// LoadPolarCSV reads a polar table from a CSV file of alpha,cl,cd rows,
// the export format of airfoiltools.com polar downloads. A single header
// row is tolerated; comment lines start with '#'.
func LoadPolarCSV(path string) ([]airfoil.PolarSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open polar file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse polar file %s: %w", path, err)
	}

	var samples []airfoil.PolarSample
	for i, record := range records {
		if len(record) < 3 {
			return nil, fmt.Errorf("polar file %s row %d: want 3 columns, got %d", path, i+1, len(record))
		}
		alpha, err1 := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		lift, err2 := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		drag, err3 := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("polar file %s row %d: non-numeric value", path, i+1)
		}
		samples = append(samples, airfoil.PolarSample{Alpha: alpha, Lift: lift, Drag: drag})
	}

	return samples, nil
}
