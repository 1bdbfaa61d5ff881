// ABOUTME: Sample-level PCM operations used by the mixer
// ABOUTME: Looping repeats material with no silence gap; overlay clips instead of wrapping

package audio

import (
	"math"

	"briefing-api/core/domain"
)

// duckGainDB is the fixed attenuation applied to the background track so
// narration stays intelligible. Not user-configurable.
const duckGainDB = -15.0

// duckGain converts the fixed ducking level to an amplitude factor
func duckGain() float64 {
	return math.Pow(10, duckGainDB/20)
}

// loopToFrames repeats the clip (no stretching, no gaps) until it covers
// at least the requested frame count, then trims to exactly that count.
// A clip already longer than the target keeps its opening portion.
func loopToFrames(clip *domain.PCMClip, frames int) *domain.PCMClip {
	target := frames * clip.Channels
	out := make([]int16, 0, target)

	if len(clip.Samples) == 0 {
		return &domain.PCMClip{
			SampleRate: clip.SampleRate,
			Channels:   clip.Channels,
			Samples:    make([]int16, target),
		}
	}

	for len(out) < target {
		remaining := target - len(out)
		if remaining >= len(clip.Samples) {
			out = append(out, clip.Samples...)
		} else {
			out = append(out, clip.Samples[:remaining]...)
		}
	}

	return &domain.PCMClip{
		SampleRate: clip.SampleRate,
		Channels:   clip.Channels,
		Samples:    out,
	}
}

// applyGain scales every sample by factor, clamping to the int16 range
func applyGain(clip *domain.PCMClip, factor float64) *domain.PCMClip {
	out := make([]int16, len(clip.Samples))
	for i, s := range clip.Samples {
		out[i] = clampSample(float64(s) * factor)
	}
	return &domain.PCMClip{
		SampleRate: clip.SampleRate,
		Channels:   clip.Channels,
		Samples:    out,
	}
}

// overlay sums two equal-length clips sample-for-sample, clamping the
// result to avoid overflow distortion
func overlay(speech, background *domain.PCMClip) *domain.PCMClip {
	out := make([]int16, len(speech.Samples))
	for i := range speech.Samples {
		sum := int32(speech.Samples[i])
		if i < len(background.Samples) {
			sum += int32(background.Samples[i])
		}
		out[i] = clampSample(float64(sum))
	}
	return &domain.PCMClip{
		SampleRate: speech.SampleRate,
		Channels:   speech.Channels,
		Samples:    out,
	}
}

// clampSample bounds a value to the signed 16-bit sample range
func clampSample(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
