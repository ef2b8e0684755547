package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager owns the speaker and a mixer each chime is added to. Every
// method is a no-op until Initialize succeeds, so a machine without audio
// keeps running silently.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager returns a manager playing at the given linear volume.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sound reaches the device.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayChime strikes a bell pitched by the click position.
func (sm *SoundManager) PlayChime(x, w float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(Chime(NoteFor(x, w), sm.volume, sampleRate))
	speaker.Unlock()
}

// Cleanup silences pending chimes and closes the device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
