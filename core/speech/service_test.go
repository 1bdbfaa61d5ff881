package speech

import (
	"context"
	"testing"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// fakeSynthesizer is a controllable Synthesizer implementation
type fakeSynthesizer struct {
	configured bool
	result     *domain.SynthesisResult
	err        error
	calls      int
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text, voiceID string, format domain.AudioFormat) (*domain.SynthesisResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeSynthesizer) Configured() bool { return f.configured }
func (f *fakeSynthesizer) Name() string     { return "fake" }

func script() *domain.BriefingScript {
	return &domain.BriefingScript{Text: "Good morning.", CharacterCount: 13, ArticleCount: 1}
}

func TestSynthesize_FailsFastWithoutCredential(t *testing.T) {
	synth := &fakeSynthesizer{configured: false}
	service := NewService(synth, nopLogger{})

	_, err := service.Synthesize(context.Background(), script(), domain.DefaultVoiceID, domain.FormatMP3)

	if !coreerrors.IsProviderNotConfigured(err) {
		t.Fatalf("error should be ProviderNotConfiguredError, got %v", err)
	}
	if synth.calls != 0 {
		t.Error("the provider must not be called when unconfigured")
	}
}

func TestSynthesize_SingleAttemptPassthrough(t *testing.T) {
	synth := &fakeSynthesizer{
		configured: true,
		result: &domain.SynthesisResult{
			Audio:               []byte("speech"),
			DurationSeconds:     12.34,
			CharactersUsed:      13,
			CharactersRemaining: 4987,
		},
	}
	service := NewService(synth, nopLogger{})

	result, err := service.Synthesize(context.Background(), script(), domain.DefaultVoiceID, domain.FormatWAV)
	if err != nil {
		t.Fatalf("Synthesize returned error: %v", err)
	}

	if synth.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1", synth.calls)
	}
	if result.DurationSeconds != 12.34 || result.CharactersUsed != 13 || result.CharactersRemaining != 4987 {
		t.Errorf("provider accounting must pass through verbatim, got %+v", result)
	}
}

func TestSynthesize_PropagatesProviderError(t *testing.T) {
	synth := &fakeSynthesizer{
		configured: true,
		err:        &coreerrors.SynthesisError{Provider: "fake", StatusCode: 403, Message: "quota exceeded"},
	}
	service := NewService(synth, nopLogger{})

	_, err := service.Synthesize(context.Background(), script(), domain.DefaultVoiceID, domain.FormatMP3)

	if !coreerrors.IsSynthesis(err) {
		t.Fatalf("error should be SynthesisError, got %v", err)
	}
	if synth.calls != 1 {
		t.Errorf("provider calls = %d, want exactly 1 (no retry)", synth.calls)
	}
}
