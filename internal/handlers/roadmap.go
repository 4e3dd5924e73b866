package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

type roadmapPipeline interface {
	GenerateRoadmap(ctx context.Context, req models.RoadmapRequest) (string, error)
}

type RoadmapHandler struct {
	pipeline roadmapPipeline
}

func NewRoadmapHandler(pipeline roadmapPipeline) *RoadmapHandler {
	return &RoadmapHandler{pipeline: pipeline}
}

func (h *RoadmapHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Project title is required", r))
		return
	}
	if req.DurationMonths < 1 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Duration must be at least 1 month", r))
		return
	}

	roadmap, err := h.pipeline.GenerateRoadmap(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.RoadmapResponse{Roadmap: roadmap})
}
