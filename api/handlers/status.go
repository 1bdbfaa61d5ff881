// ABOUTME: Health and service info handlers
// ABOUTME: Health reports startup checks cached once at boot, not re-probed per request

package handlers

import (
	"net/http"

	"briefing-api/api/dto/responses"
	"briefing-api/core/domain"
)

// ServiceVersion is reported by the info endpoint
const ServiceVersion = "1.0.0"

// StartupChecks holds environment facts probed once at startup
type StartupChecks struct {
	// TTSConfigured reports whether the speech provider credential is set
	TTSConfigured bool

	// TTSProvider names the active speech provider
	TTSProvider string

	// EncoderAvailable reports whether the audio encoder binary was found
	EncoderAvailable bool

	// BackgroundMusicPresent reports whether the music bed file exists
	BackgroundMusicPresent bool
}

// StatusHandler serves the health and info endpoints
type StatusHandler struct {
	checks StartupChecks
}

// NewStatusHandler creates a status handler with the given startup checks
func NewStatusHandler(checks StartupChecks) *StatusHandler {
	return &StatusHandler{checks: checks}
}

// Health handles GET /health. The service is degraded, not down, when a
// briefing cannot currently be produced.
func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if !h.checks.TTSConfigured || !h.checks.EncoderAvailable {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, responses.HealthResponse{
		Status:                 status,
		TTSConfigured:          h.checks.TTSConfigured,
		TTSProvider:            h.checks.TTSProvider,
		EncoderAvailable:       h.checks.EncoderAvailable,
		BackgroundMusicPresent: h.checks.BackgroundMusicPresent,
	})
}

// Info handles GET /info
func (h *StatusHandler) Info(w http.ResponseWriter, r *http.Request) {
	voices := make([]responses.VoiceInfo, 0, len(domain.Voices))
	for _, v := range domain.Voices {
		voices = append(voices, responses.VoiceInfo{
			ID:          v.ID,
			DisplayName: v.DisplayName,
			Locale:      v.Locale,
			Gender:      v.Gender,
		})
	}

	formats := make([]string, 0, len(domain.AudioFormats))
	for _, f := range domain.AudioFormats {
		formats = append(formats, string(f))
	}

	writeJSON(w, http.StatusOK, responses.InfoResponse{
		Name:    "briefing-api",
		Version: ServiceVersion,
		Voices:  voices,
		Formats: formats,
	})
}
