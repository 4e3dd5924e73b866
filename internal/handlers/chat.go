package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

type chatPipeline interface {
	Chat(ctx context.Context, history []models.ChatMessage, message string) (string, []models.ChatMessage, error)
}

type ChatHandler struct {
	pipeline chatPipeline
}

func NewChatHandler(pipeline chatPipeline) *ChatHandler {
	return &ChatHandler{pipeline: pipeline}
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	reply, history, err := h.pipeline.Chat(r.Context(), req.History, req.Message)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Reply: reply, History: history})
}
