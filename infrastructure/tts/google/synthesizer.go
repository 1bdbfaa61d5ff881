// ABOUTME: Google Cloud text-to-speech backend implementing the Synthesizer port
// ABOUTME: Maps the fixed voice set onto Neural2 voices and chunks long scripts

package google

import (
	"context"
	"os"
	"strings"
	"sync"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
	"briefing-api/core/interfaces"
)

const (
	providerName = "google"

	// maxChunkSize bounds each SynthesizeSpeech call's text input
	maxChunkSize = 1000
)

// voiceNames maps the service's fixed voice IDs onto Google voices
var voiceNames = map[string]struct {
	languageCode string
	name         string
}{
	"en-US-natalie": {"en-US", "en-US-Neural2-F"},
	"en-US-terrell": {"en-US", "en-US-Neural2-J"},
	"en-UK-ruby":    {"en-GB", "en-GB-Neural2-A"},
	"en-UK-theo":    {"en-GB", "en-GB-Neural2-B"},
}

// Synthesizer implements the Synthesizer port on Google Cloud TTS
type Synthesizer struct {
	logger          interfaces.Logger
	characterBudget int

	once    sync.Once
	client  *texttospeech.Client
	initErr error
}

// NewSynthesizer creates a Google TTS backend. The API client itself is
// created lazily on first use.
func NewSynthesizer(logger interfaces.Logger, characterBudget int) *Synthesizer {
	return &Synthesizer{
		logger:          logger,
		characterBudget: characterBudget,
	}
}

// Name identifies the provider
func (s *Synthesizer) Name() string {
	return providerName
}

// Configured reports whether application default credentials are present
func (s *Synthesizer) Configured() bool {
	return os.Getenv("GOOGLE_APPLICATION_CREDENTIALS") != ""
}

// Synthesize converts the script into speech. Google reports no quota
// accounting, so characters-used is the script length and
// characters-remaining is derived from the configured budget. Duration is
// left at zero; the mixer measures it from the decoded samples.
func (s *Synthesizer) Synthesize(ctx context.Context, text string, voiceID string, format domain.AudioFormat) (*domain.SynthesisResult, error) {
	if !s.Configured() {
		return nil, &coreerrors.ProviderNotConfiguredError{Provider: providerName}
	}

	voice, ok := voiceNames[voiceID]
	if !ok {
		return nil, &coreerrors.SynthesisError{
			Provider: providerName,
			Message:  "unknown voice id " + voiceID,
		}
	}

	s.once.Do(func() {
		s.client, s.initErr = texttospeech.NewClient(context.Background())
	})
	if s.initErr != nil {
		return nil, &coreerrors.SynthesisError{
			Provider: providerName,
			Message:  "create client: " + s.initErr.Error(),
		}
	}

	var audio []byte
	for _, chunk := range splitTextIntoChunks(text, maxChunkSize) {
		req := texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{Text: chunk},
			},
			Voice: &texttospeechpb.VoiceSelectionParams{
				LanguageCode: voice.languageCode,
				Name:         voice.name,
			},
			AudioConfig: &texttospeechpb.AudioConfig{
				// MP3 frames concatenate cleanly across chunk boundaries;
				// the mixer decodes and re-encodes to the requested format
				AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			},
		}

		resp, err := s.client.SynthesizeSpeech(ctx, &req)
		if err != nil {
			return nil, &coreerrors.SynthesisError{
				Provider: providerName,
				Message:  err.Error(),
			}
		}
		audio = append(audio, resp.AudioContent...)
	}

	used := len([]rune(text))
	remaining := s.characterBudget - used
	if remaining < 0 {
		remaining = 0
	}

	return &domain.SynthesisResult{
		Audio:               audio,
		CharactersUsed:      used,
		CharactersRemaining: remaining,
	}, nil
}

// splitTextIntoChunks breaks the script into word-aligned chunks no longer
// than maxSize characters
func splitTextIntoChunks(text string, maxSize int) []string {
	var chunks []string
	var chunk string

	for _, word := range strings.Fields(text) {
		if len(chunk)+len(word)+1 > maxSize {
			chunks = append(chunks, chunk)
			chunk = word
			continue
		}
		if chunk != "" {
			chunk += " "
		}
		chunk += word
	}
	if chunk != "" {
		chunks = append(chunks, chunk)
	}

	return chunks
}
