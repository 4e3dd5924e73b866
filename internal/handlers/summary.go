package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

type summaryPipeline interface {
	Summarize(ctx context.Context, videoURL, language string) (string, error)
}

type SummaryHandler struct {
	pipeline summaryPipeline
}

func NewSummaryHandler(pipeline summaryPipeline) *SummaryHandler {
	return &SummaryHandler{pipeline: pipeline}
}

// reflectionQuestions ships with every summary so the frontend can
// prompt the viewer to engage with the material.
var reflectionQuestions = []string{
	"What are the main points discussed in the video?",
	"How does this content relate to the broader context?",
	"What evidence is presented to support the main arguments?",
}

func (h *SummaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "URL is required", r))
		return
	}

	summary, err := h.pipeline.Summarize(r.Context(), req.URL, req.Language)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SummaryResponse{
		Summary:   summary,
		Questions: reflectionQuestions,
	})
}
