// ABOUTME: Murf speech synthesis client implementing the Synthesizer port
// ABOUTME: One generation call per request, then a download of the returned audio asset

package murf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
	"briefing-api/core/interfaces"
)

const providerName = "murf"

// Client talks to the Murf speech generation API
type Client struct {
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	apiKey     string
	apiURL     string
}

// NewClient creates a Murf client. The API key may be empty; Configured
// reports that and Synthesize fails fast without a network call.
func NewClient(httpClient interfaces.HTTPClient, logger interfaces.Logger, apiKey, apiURL string) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		apiKey:     apiKey,
		apiURL:     apiURL,
	}
}

// Name identifies the provider
func (c *Client) Name() string {
	return providerName
}

// Configured reports whether a credential is present
func (c *Client) Configured() bool {
	return strings.TrimSpace(c.apiKey) != ""
}

// generateRequest is the Murf speech generation payload
type generateRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
	Format  string `json:"format"`
}

// generateResponse is the subset of Murf's response we consume
type generateResponse struct {
	AudioFile           string  `json:"audioFile"`
	AudioLengthSeconds  float64 `json:"audioLengthInSeconds"`
	ConsumedCharacters  int     `json:"consumedCharacterCount"`
	RemainingCharacters int     `json:"remainingCharacterCount"`
	ErrorMessage        string  `json:"errorMessage"`
}

// Synthesize sends the script to Murf and downloads the resulting speech
// asset. The generation call is made exactly once; it is paid and
// non-idempotent, so it is never retried.
func (c *Client) Synthesize(ctx context.Context, text string, voiceID string, format domain.AudioFormat) (*domain.SynthesisResult, error) {
	if !c.Configured() {
		return nil, &coreerrors.ProviderNotConfiguredError{Provider: providerName}
	}

	payload, err := json.Marshal(generateRequest{
		Text:    text,
		VoiceID: voiceID,
		Format:  string(format),
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "marshal murf request")
	}

	c.logger.Info("Requesting speech synthesis", map[string]interface{}{
		"provider":   providerName,
		"voice_id":   voiceID,
		"format":     string(format),
		"characters": len([]rune(text)),
	})

	resp, err := c.httpClient.Post(ctx, c.apiURL, bytes.NewReader(payload), map[string]string{
		"api-key": c.apiKey,
	})
	if err != nil {
		return nil, &coreerrors.SynthesisError{
			Provider: providerName,
			Message:  err.Error(),
		}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.SynthesisError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("read response: %v", err),
		}
	}

	var generated generateResponse
	// Error bodies are also JSON with an errorMessage field; a decode
	// failure just leaves the raw body as the message below.
	_ = json.Unmarshal(body, &generated)

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		message := generated.ErrorMessage
		if message == "" {
			message = strings.TrimSpace(string(body))
		}
		return nil, &coreerrors.SynthesisError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Message:    message,
		}
	}

	if generated.AudioFile == "" {
		return nil, &coreerrors.SynthesisError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Message:    "no audio file URL in provider response",
		}
	}

	audio, err := c.downloadAudio(ctx, generated.AudioFile)
	if err != nil {
		return nil, err
	}

	return &domain.SynthesisResult{
		Audio:               audio,
		DurationSeconds:     generated.AudioLengthSeconds,
		CharactersUsed:      generated.ConsumedCharacters,
		CharactersRemaining: generated.RemainingCharacters,
	}, nil
}

// downloadAudio fetches the generated asset from the provider's storage.
// The download is idempotent, so the retrying GET path is fine here.
func (c *Client) downloadAudio(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.httpClient.Get(ctx, url)
	if err != nil {
		return nil, &coreerrors.SynthesisError{
			Provider: providerName,
			Message:  fmt.Sprintf("download audio asset: %v", err),
		}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.SynthesisError{
			Provider:   providerName,
			StatusCode: resp.StatusCode(),
			Message:    "audio asset download failed",
		}
	}

	audio, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.SynthesisError{
			Provider: providerName,
			Message:  fmt.Sprintf("read audio asset: %v", err),
		}
	}
	return audio, nil
}
