// ABOUTME: Response DTOs for the briefing API endpoints
// ABOUTME: Maps pipeline results and errors onto the wire format

package responses

import "briefing-api/core/domain"

// GenerateBriefingResponse is the success body for briefing generation
type GenerateBriefingResponse struct {
	// Success is always true for this shape
	Success bool `json:"success"`

	// AudioURL is where the generated file can be fetched
	AudioURL string `json:"audio_url"`

	// BriefingText is the full narration script
	BriefingText string `json:"briefing_text"`

	// AudioLengthSeconds is the duration of the generated audio
	AudioLengthSeconds float64 `json:"audio_length_seconds"`

	// CharactersUsed and CharactersRemaining mirror provider accounting
	CharactersUsed      int `json:"characters_used"`
	CharactersRemaining int `json:"characters_remaining"`

	// ArticlesCount is the number of articles narrated
	ArticlesCount int `json:"articles_count"`

	// Sources lists the distinct source names, in narration order
	Sources []string `json:"sources"`

	// FailedFeeds reports feeds skipped during an otherwise successful run
	FailedFeeds []FailedFeed `json:"failed_feeds,omitempty"`
}

// FailedFeed describes one feed that could not contribute articles
type FailedFeed struct {
	URL    string `json:"url"`
	Reason string `json:"reason"`
}

// ErrorResponse is the common error body
type ErrorResponse struct {
	// Success is always false for this shape
	Success bool `json:"success"`

	// Error is a short human-readable description
	Error string `json:"error"`

	// Details optionally carries extra context (field names, reasons)
	Details string `json:"details,omitempty"`
}

// FromBriefingResult maps a pipeline result onto the response shape
func FromBriefingResult(result *domain.BriefingResult) GenerateBriefingResponse {
	failed := make([]FailedFeed, 0, len(result.FailedFeeds))
	for _, f := range result.FailedFeeds {
		failed = append(failed, FailedFeed{URL: f.URL, Reason: f.Reason})
	}
	if len(failed) == 0 {
		failed = nil
	}

	return GenerateBriefingResponse{
		Success:             true,
		AudioURL:            result.AudioURL,
		BriefingText:        result.Script,
		AudioLengthSeconds:  result.DurationSeconds,
		CharactersUsed:      result.CharactersUsed,
		CharactersRemaining: result.CharactersRemaining,
		ArticlesCount:       result.ArticleCount,
		Sources:             result.Sources,
		FailedFeeds:         failed,
	}
}

// HealthResponse reports service liveness plus cached startup checks
type HealthResponse struct {
	Status string `json:"status"`

	// TTSConfigured reports whether the speech provider credential is set
	TTSConfigured bool `json:"tts_configured"`

	// TTSProvider names the active speech provider
	TTSProvider string `json:"tts_provider"`

	// EncoderAvailable reports whether the audio encoder was found at startup
	EncoderAvailable bool `json:"encoder_available"`

	// BackgroundMusicPresent reports whether the music bed file was found
	BackgroundMusicPresent bool `json:"background_music_present"`
}

// InfoResponse describes the service
type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`

	// Voices lists the selectable narration voices
	Voices []VoiceInfo `json:"voices"`

	// Formats lists the supported output audio formats
	Formats []string `json:"formats"`
}

// VoiceInfo is one selectable voice in the info response
type VoiceInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Locale      string `json:"locale"`
	Gender      string `json:"gender"`
}
