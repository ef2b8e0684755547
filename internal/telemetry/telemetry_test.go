package telemetry

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPerfCollectorStats(t *testing.T) {
	pc := NewPerfCollector(10)
	for _, ms := range []int{10, 20, 30, 40} {
		pc.Record(FrameSample{
			Duration: time.Duration(ms) * time.Millisecond,
			Phases:   map[string]time.Duration{PhaseTick: time.Duration(ms) * time.Millisecond / 2},
		})
	}
	s := pc.Stats()
	if s.Frames != 4 || s.Mean != 25*time.Millisecond {
		t.Fatalf("frames %d mean %v", s.Frames, s.Mean)
	}
	if s.Min != 10*time.Millisecond || s.Max != 40*time.Millisecond || s.P95 != 40*time.Millisecond {
		t.Fatalf("min %v max %v p95 %v", s.Min, s.Max, s.P95)
	}
	if s.StdDev <= 0 {
		t.Fatalf("stddev = %v", s.StdDev)
	}
	if pct := s.PhasePct[PhaseTick]; pct < 49.9 || pct > 50.1 {
		t.Fatalf("tick pct = %v, want 50", pct)
	}
	if s.FPS < 39.9 || s.FPS > 40.1 {
		t.Fatalf("fps = %v, want 40", s.FPS)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc := NewPerfCollector(3)
	for i := 1; i <= 10; i++ {
		pc.Record(FrameSample{Duration: time.Duration(i) * time.Millisecond})
	}
	s := pc.Stats()
	if pc.Len() != 3 || s.Min != 8*time.Millisecond || s.Max != 10*time.Millisecond {
		t.Fatalf("len %d min %v max %v", pc.Len(), s.Min, s.Max)
	}
}

func TestPerfCollectorTiming(t *testing.T) {
	pc := NewPerfCollector(0)
	pc.StartFrame()
	pc.StartPhase(PhaseTick)
	time.Sleep(time.Millisecond)
	pc.StartPhase(PhaseEncode)
	pc.EndFrame()
	s := pc.Stats()
	if s.Mean <= 0 || s.StdDev != 0 {
		t.Fatalf("mean %v stddev %v", s.Mean, s.StdDev)
	}
	if _, ok := s.PhasePct[PhaseEncode]; !ok {
		t.Fatal("encode phase not tracked")
	}
}

func TestEmptyStats(t *testing.T) {
	s := NewPerfCollector(5).Stats()
	if s.Frames != 0 || s.PhasePct == nil {
		t.Fatalf("unexpected empty stats %+v", s)
	}
}

func TestLogStats(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	pc := NewPerfCollector(2)
	pc.Record(FrameSample{Duration: 16 * time.Millisecond})
	pc.Stats().LogStats(logger)
	if !strings.Contains(buf.String(), "stats.mean_us=16000") {
		t.Fatalf("log line missing mean: %s", buf.String())
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	pc := NewPerfCollector(4)
	pc.Record(FrameSample{Duration: 5 * time.Millisecond})
	if err := om.WritePerf(pc.Stats(), 60); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := om.WritePerf(pc.Stats(), 120); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header plus 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "frame,frames,mean_us") || !strings.HasPrefix(lines[2], "120,1,5000") {
		t.Fatalf("unexpected csv:\n%s", data)
	}
}

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if om != nil || err != nil {
		t.Fatalf("empty dir: %v %v", om, err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil || om.Close() != nil || om.Dir() != "" {
		t.Fatal("nil manager must discard")
	}
}
