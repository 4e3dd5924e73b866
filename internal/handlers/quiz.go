package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

type quizPipeline interface {
	GenerateQuiz(ctx context.Context, videoURL, language string) ([]models.MCQ, error)
}

type QuizHandler struct {
	pipeline quizPipeline
}

func NewQuizHandler(pipeline quizPipeline) *QuizHandler {
	return &QuizHandler{pipeline: pipeline}
}

func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "URL is required", r))
		return
	}

	mcqs, err := h.pipeline.GenerateQuiz(r.Context(), req.URL, req.Language)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.MCQResponse{MCQs: mcqs})
}
