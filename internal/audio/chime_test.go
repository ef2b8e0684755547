package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestBellDecaysAndEnds(t *testing.T) {
	rate := beep.SampleRate(8000)
	b := NewBell(440, 100*time.Millisecond, rate)
	buf := make([][2]float64, 2000)
	n, ok := b.Stream(buf)
	if !ok || n != rate.N(100*time.Millisecond) {
		t.Fatalf("streamed %d samples ok=%v, want %d", n, ok, rate.N(100*time.Millisecond))
	}
	head, tail := 0.0, 0.0
	for i := 0; i < 100; i++ {
		head = math.Max(head, math.Abs(buf[i][0]))
		tail = math.Max(tail, math.Abs(buf[n-1-i][0]))
	}
	if tail >= head {
		t.Fatalf("bell did not decay: head %v tail %v", head, tail)
	}
	if n, ok := b.Stream(buf); n != 0 || ok {
		t.Fatalf("finished bell streamed %d ok=%v", n, ok)
	}
	if b.Err() != nil {
		t.Fatalf("unexpected error %v", b.Err())
	}
}

func TestEnvelopeAttack(t *testing.T) {
	rate := beep.SampleRate(8000)
	e := NewEnvelope(beep.Silence(-1), 10*time.Millisecond, rate)
	buf := make([][2]float64, 10)
	if n, ok := e.Stream(buf); n != 10 || !ok {
		t.Fatalf("streamed %d ok=%v", n, ok)
	}

	src := NewBell(440, 50*time.Millisecond, rate)
	raw := NewBell(440, 50*time.Millisecond, rate)
	env := NewEnvelope(src, 10*time.Millisecond, rate)
	a := make([][2]float64, 40)
	b := make([][2]float64, 40)
	env.Stream(a)
	raw.Stream(b)
	if a[0][0] != 0 {
		t.Fatalf("first enveloped sample = %v, want 0", a[0][0])
	}
	for i := range a {
		if math.Abs(a[i][0]) > math.Abs(b[i][0])+1e-12 {
			t.Fatalf("sample %d louder under envelope", i)
		}
	}
}

func TestNoteForRange(t *testing.T) {
	if NoteFor(0, 800) != baseFreq {
		t.Fatalf("left edge = %v, want %v", NoteFor(0, 800), baseFreq)
	}
	if NoteFor(-50, 800) != baseFreq || NoteFor(10, 0) != baseFreq {
		t.Fatal("out of range positions must clamp to the base note")
	}
	prev := 0.0
	for x := 0.0; x <= 800; x += 80 {
		f := NoteFor(x, 800)
		if f < prev {
			t.Fatalf("pitch fell from %v to %v at x=%v", prev, f, x)
		}
		prev = f
	}
}

func TestChimeSilentAtZeroVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := Chime(440, 0, rate)
	buf := make([][2]float64, 200)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("sample %d = %v at zero volume", i, buf[i][0])
		}
	}
}

func TestSoundManagerNoopWhenUninitialized(t *testing.T) {
	sm := NewSoundManager(0.5)
	if sm.Enabled() {
		t.Fatal("manager enabled before Initialize")
	}
	sm.PlayChime(10, 100)
	sm.Cleanup()
}
