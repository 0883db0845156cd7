package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/byrax15/snake-gl/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays short synthesized cues for game outcomes
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// IsInitialized reports whether cues reach the speaker
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEat plays a short rising chirp
func (sm *SoundManager) PlayEat() {
	sm.play(parameter.EatSoundDuration, NewSweepGenerator(sampleRate, parameter.EatSoundFreqStart, parameter.EatSoundFreqEnd, parameter.EatSoundDuration))
}

// PlayCrash plays a low buzz
func (sm *SoundManager) PlayCrash() {
	sm.play(parameter.CrashSoundDuration, NewBuzzGenerator(sampleRate, parameter.CrashSoundFreq))
}

// PlayRestart plays a plain tone
func (sm *SoundManager) PlayRestart() {
	sm.play(parameter.RestartSoundDuration, NewToneGenerator(sampleRate, parameter.RestartSoundFreq))
}

func (sm *SoundManager) play(d time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(d), s))
	speaker.Unlock()
}
