package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame.
const (
	PhaseTick    = "tick"
	PhaseEncode  = "encode"
	PhasePresent = "present"
)

var phases = []string{PhaseTick, PhaseEncode, PhasePresent}

// FrameSample holds timing data for a single frame.
type FrameSample struct {
	Duration time.Duration
	Phases   map[string]time.Duration
}

// PerfCollector tracks frame timings over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []FrameSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.Record(FrameSample{Duration: now.Sub(p.frameStart), Phases: p.currentPhases})
}

// Record stores a finished sample, evicting the oldest once the window is full.
func (p *PerfCollector) Record(s FrameSample) {
	p.samples[p.writeIndex] = s
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// Len reports how many samples the window holds.
func (p *PerfCollector) Len() int { return p.sampleCount }

// PerfStats holds aggregated frame statistics.
type PerfStats struct {
	Frames int

	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
	P95    time.Duration

	PhasePct map[string]float64

	FPS float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{PhasePct: make(map[string]float64)}
	}

	durations := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		durations[i] = float64(s.Duration)
		total += s.Duration
		for phase, d := range s.Phases {
			phaseSum[phase] += d
		}
	}

	mean := stat.Mean(durations, nil)
	var sd float64
	if len(durations) > 1 {
		sd = stat.StdDev(durations, nil)
	}
	slices.Sort(durations)
	p95 := stat.Quantile(0.95, stat.Empirical, durations, nil)

	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		if total > 0 {
			phasePct[phase] = float64(sum) / float64(total) * 100
		}
	}

	var fps float64
	if mean > 0 {
		fps = float64(time.Second) / mean
	}

	return PerfStats{
		Frames:   p.sampleCount,
		Mean:     time.Duration(mean),
		StdDev:   time.Duration(sd),
		Min:      time.Duration(durations[0]),
		Max:      time.Duration(durations[len(durations)-1]),
		P95:      time.Duration(p95),
		PhasePct: phasePct,
		FPS:      fps,
	}
}

// LogStats logs the statistics at info level.
func (s PerfStats) LogStats(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("mean_us", s.Mean.Microseconds()),
		slog.Int64("stddev_us", s.StdDev.Microseconds()),
		slog.Int64("p95_us", s.P95.Microseconds()),
		slog.Int64("max_us", s.Max.Microseconds()),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat row for CSV export.
type PerfStatsCSV struct {
	Frame      uint64  `csv:"frame"`
	Frames     int     `csv:"frames"`
	MeanUS     int64   `csv:"mean_us"`
	StdDevUS   int64   `csv:"stddev_us"`
	MinUS      int64   `csv:"min_us"`
	MaxUS      int64   `csv:"max_us"`
	P95US      int64   `csv:"p95_us"`
	FPS        float64 `csv:"fps"`
	TickPct    float64 `csv:"tick_pct"`
	EncodePct  float64 `csv:"encode_pct"`
	PresentPct float64 `csv:"present_pct"`
}

// ToCSV flattens the statistics for the window ending at frame.
func (s PerfStats) ToCSV(frame uint64) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:      frame,
		Frames:     s.Frames,
		MeanUS:     s.Mean.Microseconds(),
		StdDevUS:   s.StdDev.Microseconds(),
		MinUS:      s.Min.Microseconds(),
		MaxUS:      s.Max.Microseconds(),
		P95US:      s.P95.Microseconds(),
		FPS:        s.FPS,
		TickPct:    s.PhasePct[PhaseTick],
		EncodePct:  s.PhasePct[PhaseEncode],
		PresentPct: s.PhasePct[PhasePresent],
	}
}
