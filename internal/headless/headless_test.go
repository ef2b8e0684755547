package headless

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ink-ridge/internal/core"
	"ink-ridge/internal/landscape"
)

func TestRunWritesFramesAndPerf(t *testing.T) {
	dir := t.TempDir()
	scene := landscape.New(landscape.DefaultConfig(), core.Size{W: 64, H: 40})
	res, err := Run(context.Background(), scene, 64, 40, Options{
		Frames:     20,
		FPS:        10,
		Every:      5,
		OutDir:     filepath.Join(dir, "frames"),
		Sweep:      true,
		ClickEvery: 7,
		PerfDir:    dir,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Frames != 20 || scene.Frame() != 20 {
		t.Fatalf("rendered %d frames, scene at %d", res.Frames, scene.Frame())
	}
	if len(res.Written) != 4 {
		t.Fatalf("wrote %d frames, want 4", len(res.Written))
	}
	f, err := os.Open(res.Written[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 40 {
		t.Fatalf("frame bounds %v", b)
	}
	if scene.Ripples().Len() == 0 {
		t.Fatal("scripted clicks spawned no ripples")
	}

	data, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if rows := strings.Count(strings.TrimSpace(string(data)), "\n"); rows != 2 {
		t.Fatalf("perf.csv has %d data rows, want 2:\n%s", rows, data)
	}
	if res.Perf.Frames != 10 {
		t.Fatalf("perf window = %d frames", res.Perf.Frames)
	}
}

func TestRunDeterministicTime(t *testing.T) {
	scene := landscape.New(landscape.DefaultConfig(), core.Size{W: 16, H: 16})
	if _, err := Run(context.Background(), scene, 16, 16, Options{Frames: 31, FPS: 30}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := scene.Time(); got < 0.999 || got > 1.001 {
		t.Fatalf("scene time after 31 frames at 30fps = %v, want 1", got)
	}
}

func TestRunRejectsEmptySurface(t *testing.T) {
	scene := landscape.New(landscape.DefaultConfig(), core.Size{})
	if _, err := Run(context.Background(), scene, 0, 10, Options{Frames: 1}); err == nil {
		t.Fatal("expected error for empty surface")
	}
}

func TestRunHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	scene := landscape.New(landscape.DefaultConfig(), core.Size{W: 8, H: 8})
	res, err := Run(ctx, scene, 8, 8, Options{Frames: 100})
	if err == nil || res.Frames != 0 {
		t.Fatalf("err %v frames %d", err, res.Frames)
	}
}

func TestSweepPosition(t *testing.T) {
	x0, _ := SweepPosition(0, 11, 100, 50)
	xm, _ := SweepPosition(5, 11, 100, 50)
	x1, _ := SweepPosition(10, 11, 100, 50)
	if x0 != 0 || xm != 100 || x1 != 0 {
		t.Fatalf("sweep x = %v %v %v", x0, xm, x1)
	}
	if x, y := SweepPosition(0, 1, 100, 50); x != 50 || y != 25 {
		t.Fatalf("single frame sweep = %v,%v", x, y)
	}
}
