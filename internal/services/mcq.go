package services

import (
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

// minQuestions is the floor the quiz pipeline enforces after parsing.
const minQuestions = 5

const (
	correctAnswerMarker = "Correct Answer:"
	explanationMarker   = "Explanation:"
)

var optionMarkers = []string{"A)", "B)", "C)", "D)"}

// ParseMCQs walks the raw model output line by line and assembles MCQ
// records. A line starting with "Q" opens a new record, emitting any
// record already open; option and field lines fill the open record;
// anything else is dropped without touching already-set fields. The
// record still open at end of input is emitted. Records are not
// individually validated: ragged ones (missing options, empty correct
// answer) pass through unchanged.
func ParseMCQs(raw string) []models.MCQ {
	var mcqs []models.MCQ
	var current *models.MCQ

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Q"):
			if current != nil {
				mcqs = append(mcqs, *current)
			}
			current = &models.MCQ{Question: line, Options: []string{}}
		case current == nil:
			// field line before any question, drop it
		case isOptionLine(line):
			current.Options = append(current.Options, line)
		case strings.HasPrefix(line, correctAnswerMarker):
			current.CorrectAnswer = afterColon(line)
		case strings.HasPrefix(line, explanationMarker):
			current.Explanation = afterColon(line)
		}
	}

	if current != nil {
		mcqs = append(mcqs, *current)
	}

	return mcqs
}

func isOptionLine(line string) bool {
	for _, marker := range optionMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}
	return false
}

// afterColon returns the text after the first colon, trimmed.
func afterColon(line string) string {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(rest)
}
