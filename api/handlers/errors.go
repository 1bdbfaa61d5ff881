// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	"briefing-api/api/dto/responses"
	coreerrors "briefing-api/core/errors"
)

// statusForError maps a domain error onto an HTTP status code
func statusForError(err error) int {
	switch coreerrors.Classify(err) {
	case coreerrors.ClassInput:
		return http.StatusBadRequest
	case coreerrors.ClassEnvironment:
		return http.StatusServiceUnavailable
	case coreerrors.ClassTransient:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError emits the common error body for a domain error
func writeError(w http.ResponseWriter, err error) {
	body := responses.ErrorResponse{
		Success: false,
		Error:   errorSummary(err),
	}
	// internal details stay in the logs, not the response
	if coreerrors.Classify(err) != coreerrors.ClassInternal {
		body.Details = err.Error()
	}
	writeJSON(w, statusForError(err), body)
}

// errorSummary gives a short description per error family. Internal
// errors are not echoed to the client verbatim.
func errorSummary(err error) string {
	switch {
	case coreerrors.IsValidation(err):
		return "invalid request"
	case coreerrors.IsNoArticles(err):
		return "no articles found in the requested feeds"
	case coreerrors.IsProviderNotConfigured(err):
		return "speech provider is not configured"
	case coreerrors.IsEncoderUnavailable(err):
		return "audio encoder is not available"
	case coreerrors.IsSynthesis(err):
		return "speech synthesis failed"
	case coreerrors.IsAudioDecode(err):
		return "audio processing failed"
	default:
		return "internal server error"
	}
}

// writeJSON serializes a response body with the given status
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
