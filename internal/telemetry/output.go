package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager writes frame statistics to perf.csv in an output
// directory. A nil manager discards everything.
type OutputManager struct {
	dir               string
	perfFile          *os.File
	perfHeaderWritten bool
}

// NewOutputManager creates dir and opens perf.csv inside it. Returns nil if
// dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	return &OutputManager{dir: dir, perfFile: f}, nil
}

// WritePerf appends one statistics row.
func (om *OutputManager) WritePerf(stats PerfStats, frame uint64) error {
	if om == nil {
		return nil
	}
	records := []PerfStatsCSV{stats.ToCSV(frame)}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the output file.
func (om *OutputManager) Close() error {
	if om == nil || om.perfFile == nil {
		return nil
	}
	return om.perfFile.Close()
}
