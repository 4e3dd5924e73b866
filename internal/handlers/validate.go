package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
	"github.com/jnt48/R-RoadmapGenerator/internal/services"
)

type metadataLookup interface {
	Lookup(ctx context.Context, videoURL string) (*models.VideoInfo, error)
}

type ValidateHandler struct {
	metadata metadataLookup
}

func NewValidateHandler(metadata metadataLookup) *ValidateHandler {
	return &ValidateHandler{metadata: metadata}
}

// Validate checks a video URL before the caller spends a generation
// request on it, returning basic metadata on success.
func (h *ValidateHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "URL is required", r))
		return
	}

	info, err := h.metadata.Lookup(r.Context(), req.URL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidURL) {
			handleServiceError(w, r, err)
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResp("VIDEO_LOOKUP_FAILED", "Could not fetch video metadata. Please check the link.", r))
		return
	}

	writeJSON(w, http.StatusOK, info)
}
