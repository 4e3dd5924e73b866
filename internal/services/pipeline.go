package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jnt48/R-RoadmapGenerator/internal/models"
)

// Generator is the text model behind every pipeline.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// TranscriptResolver turns a video URL into flattened caption text.
type TranscriptResolver interface {
	ResolveTranscript(videoURL, language string) (string, error)
}

// Pipeline orchestrates the four generation flows. Each request runs
// statelessly end to end: resolve (where a transcript is the input),
// build the prompt, call the model once, post-process. A failure in
// any stage aborts the whole request; there are no partial results.
type Pipeline struct {
	resolver TranscriptResolver
	gen      Generator
}

func NewPipeline(resolver TranscriptResolver, gen Generator) *Pipeline {
	return &Pipeline{resolver: resolver, gen: gen}
}

func (p *Pipeline) Summarize(ctx context.Context, videoURL, language string) (string, error) {
	transcript, err := p.resolver.ResolveTranscript(videoURL, language)
	if err != nil {
		return "", err
	}
	return p.gen.Generate(ctx, BuildSummaryPrompt(transcript))
}

func (p *Pipeline) GenerateQuiz(ctx context.Context, videoURL, language string) ([]models.MCQ, error) {
	transcript, err := p.resolver.ResolveTranscript(videoURL, language)
	if err != nil {
		return nil, err
	}

	raw, err := p.gen.Generate(ctx, BuildQuizPrompt(transcript))
	if err != nil {
		return nil, err
	}

	mcqs := ParseMCQs(raw)
	if len(mcqs) < minQuestions {
		return nil, fmt.Errorf("%w: parsed %d of %d", ErrInsufficientQuestions, len(mcqs), minQuestions)
	}

	return mcqs, nil
}

func (p *Pipeline) GenerateRoadmap(ctx context.Context, req models.RoadmapRequest) (string, error) {
	return p.gen.Generate(ctx, BuildRoadmapPrompt(req))
}

// Chat appends the user message, caps the history at the most recent
// maxHistoryMessages entries, generates the reply, and returns it with
// the updated history. The cap is applied once, before the bot append,
// so the returned history can hold maxHistoryMessages+1 entries.
func (p *Pipeline) Chat(ctx context.Context, history []models.ChatMessage, message string) (string, []models.ChatMessage, error) {
	history = append(history, models.ChatMessage{Role: models.RoleUser, Message: message})
	history = truncateHistory(history)

	raw, err := p.gen.Generate(ctx, BuildChatPrompt(history))
	if err != nil {
		return "", nil, err
	}

	reply := strings.TrimSpace(raw)
	history = append(history, models.ChatMessage{Role: models.RoleBot, Message: reply})

	return reply, history, nil
}
