package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
	"github.com/jnt48/R-RoadmapGenerator/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}

// handleServiceError maps the pipeline's terminal error kinds onto
// distinct status codes and user-actionable messages.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidURL):
		writeJSON(w, http.StatusBadRequest, errorResp("INVALID_URL", "Invalid YouTube URL. Please provide a valid video link.", r))
	case errors.Is(err, services.ErrTranscriptUnavailable):
		writeJSON(w, http.StatusBadRequest, errorResp("TRANSCRIPT_UNAVAILABLE", "Transcript extraction failed. The video may have no captions in the requested language.", r))
	case errors.Is(err, services.ErrEmptyResponse):
		writeJSON(w, http.StatusBadGateway, errorResp("EMPTY_RESPONSE", "The AI model returned an empty response. Please try again.", r))
	case errors.Is(err, services.ErrGenerationUnavailable):
		writeJSON(w, http.StatusBadGateway, errorResp("GENERATION_UNAVAILABLE", "The AI model could not be reached. Please try again later.", r))
	case errors.Is(err, services.ErrInsufficientQuestions):
		writeJSON(w, http.StatusInternalServerError, errorResp("INSUFFICIENT_QUESTIONS", "Not enough questions could be generated from this video.", r))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Something went wrong. Please try again.", r))
	}
}
