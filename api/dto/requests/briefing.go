// ABOUTME: Request DTO for the briefing generation endpoint
// ABOUTME: Provides validation and default values for incoming requests

package requests

import (
	"net/url"
	"strings"

	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
)

// GenerateBriefingRequest represents the request body for generating a briefing
type GenerateBriefingRequest struct {
	// FeedURLs is the ordered list of RSS/Atom feed URLs to ingest
	FeedURLs []string `json:"feeds"`

	// VoiceID selects one of the fixed narration voices
	VoiceID string `json:"voice_id,omitempty"`

	// Format is the requested output audio format (MP3, WAV or FLAC)
	Format string `json:"audio_format,omitempty"`

	// MaxArticlesPerFeed bounds articles taken from each feed (1-5)
	MaxArticlesPerFeed int `json:"max_articles_per_feed,omitempty"`
}

// ApplyDefaults sets default values for optional fields
func (r *GenerateBriefingRequest) ApplyDefaults(defaultMaxPerFeed int) {
	if r.VoiceID == "" {
		r.VoiceID = domain.DefaultVoiceID
	}
	if r.Format == "" {
		r.Format = string(domain.FormatMP3)
	}
	if r.MaxArticlesPerFeed == 0 {
		r.MaxArticlesPerFeed = defaultMaxPerFeed
	}
}

// Validate checks the request after defaults have been applied
func (r *GenerateBriefingRequest) Validate() error {
	if len(r.FeedURLs) == 0 {
		return &coreerrors.ValidationError{Field: "feeds", Message: "at least one feed URL is required"}
	}

	for _, raw := range r.FeedURLs {
		parsed, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return &coreerrors.ValidationError{Field: "feeds", Message: "invalid feed URL: " + raw}
		}
	}

	if !domain.ValidVoiceID(r.VoiceID) {
		return &coreerrors.ValidationError{Field: "voice_id", Message: "unknown voice: " + r.VoiceID}
	}

	if !r.AudioFormat().Valid() {
		return &coreerrors.ValidationError{Field: "audio_format", Message: "unsupported format: " + r.Format}
	}

	if r.MaxArticlesPerFeed < 1 || r.MaxArticlesPerFeed > 5 {
		return &coreerrors.ValidationError{Field: "max_articles_per_feed", Message: "must be between 1 and 5"}
	}

	return nil
}

// AudioFormat returns the requested format in its domain form.
// Format names are accepted case-insensitively.
func (r *GenerateBriefingRequest) AudioFormat() domain.AudioFormat {
	return domain.AudioFormat(strings.ToUpper(strings.TrimSpace(r.Format)))
}

// ToDomain converts the validated request into the pipeline's input form
func (r *GenerateBriefingRequest) ToDomain() domain.BriefingRequest {
	urls := make([]string, len(r.FeedURLs))
	for i, u := range r.FeedURLs {
		urls[i] = strings.TrimSpace(u)
	}
	return domain.BriefingRequest{
		FeedURLs:           urls,
		VoiceID:            r.VoiceID,
		Format:             r.AudioFormat(),
		MaxArticlesPerFeed: r.MaxArticlesPerFeed,
	}
}
