package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue durations
const (
	EatSoundDuration     = 80 * time.Millisecond
	CrashSoundDuration   = 250 * time.Millisecond
	RestartSoundDuration = 120 * time.Millisecond
)

// Cue frequencies in Hz
const (
	EatSoundFreqStart = 660.0
	EatSoundFreqEnd   = 990.0
	CrashSoundFreq    = 110.0
	RestartSoundFreq  = 440.0
)
