package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// pentatonic holds the semitone offsets a click can land on.
var pentatonic = [...]int{0, 2, 4, 7, 9, 12, 14, 16, 19, 21}

const baseFreq = 392.0 // G4

// NoteFor maps a horizontal position on a viewport of width w to a
// pentatonic pitch, low on the left.
func NoteFor(x, w float64) float64 {
	if w <= 0 {
		return baseFreq
	}
	i := int(x / w * float64(len(pentatonic)))
	i = max(0, min(i, len(pentatonic)-1))
	return baseFreq * math.Pow(2, float64(pentatonic[i])/12)
}

// bell is a decaying sine with a quiet inharmonic partial.
type bell struct {
	freq     float64
	rate     beep.SampleRate
	decay    float64
	position int
	duration int
}

// NewBell returns a struck-bell streamer lasting d.
func NewBell(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	return &bell{
		freq:     freq,
		rate:     rate,
		decay:    5 / float64(max(n, 1)),
		duration: n,
	}
}

func (b *bell) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.duration {
			return i, i > 0
		}
		t := float64(b.position) / float64(b.rate)
		amp := math.Exp(-b.decay * float64(b.position))
		val := amp * (0.8*math.Sin(2*math.Pi*b.freq*t) + 0.2*math.Sin(2*math.Pi*b.freq*2.76*t))
		samples[i][0] = val
		samples[i][1] = val
		b.position++
	}
	return len(samples), true
}

func (b *bell) Err() error { return nil }

// envelope fades a stream in over attack samples so the strike never clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
}

// NewEnvelope wraps s with a linear attack.
func NewEnvelope(s beep.Streamer, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{streamer: s, attack: rate.N(attack)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position < e.attack {
			vol := float64(e.position) / float64(e.attack)
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; zero or negative volume silences it.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Chime builds the full click sound: bell, attack envelope and volume.
func Chime(freq, vol float64, rate beep.SampleRate) beep.Streamer {
	return newVolume(NewEnvelope(NewBell(freq, 900*time.Millisecond, rate), 4*time.Millisecond, rate), vol)
}
