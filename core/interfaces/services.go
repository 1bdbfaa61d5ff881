// ABOUTME: Service ports for the briefing pipeline's external collaborators
// ABOUTME: The TTS provider and audio codec sit behind these seams so tests can fake them

package interfaces

import (
	"context"

	"briefing-api/core/domain"
)

// Synthesizer converts narration text into speech audio through a remote
// text-to-speech provider. Implementations make at most one provider call
// per Synthesize invocation; synthesis is paid and non-idempotent.
type Synthesizer interface {
	// Synthesize sends text to the provider and returns the speech asset
	// plus the provider's usage accounting, passed through verbatim.
	Synthesize(ctx context.Context, text string, voiceID string, format domain.AudioFormat) (*domain.SynthesisResult, error)

	// Configured reports whether the provider credential is present.
	// It must not perform any network call.
	Configured() bool

	// Name identifies the provider (e.g. "murf", "google")
	Name() string
}

// AudioCodec decodes compressed audio into the working PCM form and
// encodes PCM back into a container format. Implementations typically
// shell out to an external encoding tool.
type AudioCodec interface {
	// Decode converts encoded audio bytes into a PCM clip
	Decode(ctx context.Context, data []byte) (*domain.PCMClip, error)

	// DecodeFile converts an audio file on disk into a PCM clip
	DecodeFile(ctx context.Context, path string) (*domain.PCMClip, error)

	// Encode writes the clip in the requested format to the given path
	Encode(ctx context.Context, clip *domain.PCMClip, format domain.AudioFormat, path string) error

	// Available reports whether the encoding tool is present on the host.
	// Checked once at startup and cached by the caller.
	Available() error
}
