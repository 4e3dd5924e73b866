package services

import (
	"fmt"
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

// Prompt builders are pure: identical inputs always produce identical
// prompt text, no I/O, no truncation of large transcripts. Size-limit
// failures surface from the model call, not from here.

func BuildSummaryPrompt(transcript string) string {
	var b strings.Builder

	b.WriteString("You are a YouTube video summarizer. Summarize the given transcript into key points ")
	b.WriteString("with full explanation in more than 500 words using Markdown format. Include emojis for readability.\n\n")
	b.WriteString("If the transcript is not in English, translate it to English first before summarizing.\n\n")
	b.WriteString("Transcript:\n")
	b.WriteString(transcript)
	b.WriteString("\n")

	return b.String()
}

// BuildQuizPrompt shows the model a literal output template. The MCQ
// parser depends on responses following these exact line shapes.
func BuildQuizPrompt(transcript string) string {
	var b strings.Builder

	b.WriteString("You are an expert MCQ generator. Create 5 high-quality multiple-choice questions (MCQs) ")
	b.WriteString("based on the given video transcript.\n\n")
	b.WriteString("- Each question should be conceptual, not factual.\n")
	b.WriteString("- Provide 4 options per question.\n")
	b.WriteString("- Clearly indicate the correct answer.\n")
	b.WriteString("- Explain why the correct answer is right.\n")
	b.WriteString("- Keep questions challenging yet understandable.\n\n")
	b.WriteString("Example format:\n")
	b.WriteString("Q1: [Question]\n")
	b.WriteString("A) Option 1\n")
	b.WriteString("B) Option 2\n")
	b.WriteString("C) Option 3\n")
	b.WriteString("D) Option 4\n")
	b.WriteString("Correct Answer: [Correct Option]\n")
	b.WriteString("Explanation: [Why this is correct]\n\n")
	b.WriteString("Transcript:\n")
	b.WriteString(transcript)
	b.WriteString("\n")

	return b.String()
}

func BuildRoadmapPrompt(req models.RoadmapRequest) string {
	var b strings.Builder

	b.WriteString("You are an experienced project planner. Create a detailed phased roadmap for the following project.\n\n")
	fmt.Fprintf(&b, "Project Title: %s\n", req.Title)
	fmt.Fprintf(&b, "Description: %s\n", req.Description)
	fmt.Fprintf(&b, "Start Date: %s\n", req.StartDate)
	fmt.Fprintf(&b, "Duration: %d months\n", req.DurationMonths)
	if req.Notes != "" {
		fmt.Fprintf(&b, "Additional Notes: %s\n", req.Notes)
	}
	b.WriteString("\nBreak the project into phases. For each phase provide milestones, concrete tasks, ")
	b.WriteString("KPIs to track progress, resource and risk guidance, and deliverables.\n")

	return b.String()
}

// BuildChatPrompt renders the capped history as alternating User/Bot
// lines and leaves an open Bot turn for the model to continue.
func BuildChatPrompt(history []models.ChatMessage) string {
	var b strings.Builder

	b.WriteString("You are a witty, insightful assistant. Continue the conversation below as the Bot.\n\n")
	for _, m := range history {
		if m.Role == models.RoleBot {
			b.WriteString("Bot: ")
		} else {
			b.WriteString("User: ")
		}
		b.WriteString(m.Message)
		b.WriteString("\n")
	}
	b.WriteString("Bot:")

	return b.String()
}
