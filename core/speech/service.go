// ABOUTME: Speech service fronts the remote TTS provider for the pipeline
// ABOUTME: Fails fast when no credential is present; one provider attempt per request

package speech

import (
	"context"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
	"briefing-api/core/interfaces"
)

// Service wraps a Synthesizer port with credential and logging policy
type Service struct {
	synthesizer interfaces.Synthesizer
	logger      interfaces.Logger
}

// NewService creates a speech service over the given provider backend
func NewService(synthesizer interfaces.Synthesizer, logger interfaces.Logger) *Service {
	return &Service{
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// Configured reports whether the provider credential is present
func (s *Service) Configured() bool {
	return s.synthesizer.Configured()
}

// ProviderName identifies the active backend
func (s *Service) ProviderName() string {
	return s.synthesizer.Name()
}

// Synthesize converts the script to speech. The provider call is
// non-idempotent and paid, so it is attempted exactly once; provider
// accounting is passed through verbatim.
func (s *Service) Synthesize(ctx context.Context, script *domain.BriefingScript, voiceID string, format domain.AudioFormat) (*domain.SynthesisResult, error) {
	// Checked before any network activity so a missing credential never
	// turns into a provider round trip
	if !s.synthesizer.Configured() {
		return nil, &coreerrors.ProviderNotConfiguredError{Provider: s.synthesizer.Name()}
	}

	result, err := s.synthesizer.Synthesize(ctx, script.Text, voiceID, format)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Speech synthesized", map[string]interface{}{
		"provider":             s.synthesizer.Name(),
		"voice_id":             voiceID,
		"duration_seconds":     result.DurationSeconds,
		"characters_used":      result.CharactersUsed,
		"characters_remaining": result.CharactersRemaining,
	})

	return result, nil
}
