// ABOUTME: HTTP handler for briefing generation
// ABOUTME: Decodes and validates the request, runs the pipeline, maps the result

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"briefing-api/api/dto/requests"
	"briefing-api/api/dto/responses"
	"briefing-api/core/domain"
	coreerrors "briefing-api/core/errors"
	"briefing-api/core/interfaces"
)

// briefingRunner executes one briefing request end to end
type briefingRunner interface {
	Run(ctx context.Context, req domain.BriefingRequest) (*domain.BriefingResult, error)
}

// BriefingHandler handles briefing generation requests
type BriefingHandler struct {
	pipeline          briefingRunner
	logger            interfaces.Logger
	defaultMaxPerFeed int
}

// NewBriefingHandler creates a briefing handler
func NewBriefingHandler(pipeline briefingRunner, logger interfaces.Logger, defaultMaxPerFeed int) *BriefingHandler {
	return &BriefingHandler{
		pipeline:          pipeline,
		logger:            logger,
		defaultMaxPerFeed: defaultMaxPerFeed,
	}
}

// Generate handles POST /generate-briefing
func (h *BriefingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req requests.GenerateBriefingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &coreerrors.ValidationError{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	req.ApplyDefaults(h.defaultMaxPerFeed)
	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.pipeline.Run(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.Error("Briefing generation failed", map[string]interface{}{
			"error": err.Error(),
			"class": string(coreerrors.Classify(err)),
		})
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, responses.FromBriefingResult(result))
}
