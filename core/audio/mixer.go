// ABOUTME: Audio mixer that lays synthesized speech over a looped, ducked background track
// ABOUTME: Degrades to speech-only output when no usable background track is configured

package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
	"briefing-api/core/interfaces"
)

// MixOutput describes the file the mixer wrote
type MixOutput struct {
	// Path is the filesystem location of the written file
	Path string

	// Filename is the bare file name within the output directory
	Filename string

	// DurationSeconds is the mixed audio's duration measured from the
	// decoded speech samples
	DurationSeconds float64
}

// durationProber is implemented by codecs that can measure a written
// file's duration. Used for a post-write sanity check only.
type durationProber interface {
	ProbeDuration(ctx context.Context, path string) (float64, error)
}

// Mixer combines synthesized speech with an optional background track.
// The background is looped to cover the full narration, attenuated by a
// fixed amount, and summed under the speech. Output length always equals
// the speech length.
type Mixer struct {
	codec  interfaces.AudioCodec
	logger interfaces.Logger
}

// NewMixer creates a mixer backed by the given codec
func NewMixer(codec interfaces.AudioCodec, logger interfaces.Logger) *Mixer {
	return &Mixer{
		codec:  codec,
		logger: logger,
	}
}

// Mix decodes the speech audio, overlays the background track when one is
// usable, and writes the result to a uniquely named file in cfg.OutputDir.
// A missing or unconfigured background track produces speech-only output;
// a corrupt one is an error.
func (m *Mixer) Mix(ctx context.Context, speechAudio []byte, cfg domain.MixConfiguration) (*MixOutput, error) {
	if err := m.codec.Available(); err != nil {
		return nil, err
	}

	speech, err := m.codec.Decode(ctx, speechAudio)
	if err != nil {
		return nil, &coreerrors.AudioDecodeError{Source: "speech", Reason: err.Error()}
	}

	final := speech
	background := m.loadBackground(ctx, cfg.BackgroundTrackPath)
	if background != nil {
		looped := loopToFrames(background, speech.Frames())
		ducked := applyGain(looped, duckGain())
		final = overlay(speech, ducked)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, coreerrors.WrapError(err, "creating audio output directory")
	}

	filename := outputFilename(cfg.Format)
	path := filepath.Join(cfg.OutputDir, filename)
	if err := m.codec.Encode(ctx, final, cfg.Format, path); err != nil {
		return nil, coreerrors.WrapError(err, "encoding mixed audio")
	}

	out := &MixOutput{
		Path:            path,
		Filename:        filename,
		DurationSeconds: final.DurationSeconds(),
	}

	m.verifyDuration(ctx, out)

	m.logger.Info("Mixed briefing audio", map[string]interface{}{
		"path":       path,
		"format":     string(cfg.Format),
		"duration_s": out.DurationSeconds,
		"background": background != nil,
	})

	return out, nil
}

// loadBackground decodes the background track, or returns nil when the
// mix should proceed speech-only. A missing, unreadable or undecodable
// track never fails the briefing; the narration is the payload, the
// music is garnish.
func (m *Mixer) loadBackground(ctx context.Context, path string) *domain.PCMClip {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		m.logger.Warn("Background track not readable, producing speech-only audio", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}

	clip, err := m.codec.DecodeFile(ctx, path)
	if err != nil {
		m.logger.Warn("Background track failed to decode, producing speech-only audio", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return nil
	}

	return clip
}

// verifyDuration cross-checks the written file against the sample-derived
// duration when the codec can probe files. Mismatches are logged, not fatal.
func (m *Mixer) verifyDuration(ctx context.Context, out *MixOutput) {
	prober, ok := m.codec.(durationProber)
	if !ok {
		return
	}

	probed, err := prober.ProbeDuration(ctx, out.Path)
	if err != nil {
		m.logger.Debug("Could not probe output duration", map[string]interface{}{
			"path":  out.Path,
			"error": err.Error(),
		})
		return
	}

	if diff := probed - out.DurationSeconds; diff > 0.1 || diff < -0.1 {
		m.logger.Warn("Output duration differs from expected", map[string]interface{}{
			"path":     out.Path,
			"expected": out.DurationSeconds,
			"probed":   probed,
		})
	}
}

// outputFilename builds a collision-resistant name for one briefing file
func outputFilename(format domain.AudioFormat) string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("briefing_%s.%s", id, format.Extension())
}
