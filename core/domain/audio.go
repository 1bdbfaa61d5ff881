// ABOUTME: PCMClip is the working in-memory audio representation used by the mixer
// ABOUTME: All mixing math happens on interleaved 16-bit samples at a fixed rate

package domain

import "time"

// Working PCM parameters. Every decoded clip is normalized to this shape
// before mixing.
const (
	// PCMSampleRate is the working sample rate in Hz
	PCMSampleRate = 44100

	// PCMChannels is the working channel count (stereo)
	PCMChannels = 2
)

// PCMClip holds decoded audio as interleaved signed 16-bit samples
type PCMClip struct {
	// SampleRate in Hz
	SampleRate int

	// Channels is the interleaved channel count
	Channels int

	// Samples holds the interleaved PCM data
	Samples []int16
}

// Frames returns the number of sample frames (samples per channel)
func (c *PCMClip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Samples) / c.Channels
}

// Duration returns the clip length derived from the sample count.
// This is an exact measurement, not an estimate.
func (c *PCMClip) Duration() time.Duration {
	if c.SampleRate == 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// DurationSeconds returns the clip length in seconds
func (c *PCMClip) DurationSeconds() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(c.Frames()) / float64(c.SampleRate)
}
