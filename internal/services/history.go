package services

import "github.com/jnt48/R-RoadmapGenerator/internal/models"

// maxHistoryMessages bounds what the model sees per chat turn. The
// history itself is caller-held; the server keeps no copy between
// requests.
const maxHistoryMessages = 100

// truncateHistory keeps the most recent maxHistoryMessages entries,
// evicting the oldest first.
func truncateHistory(history []models.ChatMessage) []models.ChatMessage {
	if len(history) <= maxHistoryMessages {
		return history
	}
	return history[len(history)-maxHistoryMessages:]
}
