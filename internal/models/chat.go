package models

// Chat message roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "bot"
	Message string `json:"message"`
}

// ChatRequest is the payload sent to the chat endpoint. History is the
// caller-held conversation log; the server keeps no copy of it.
type ChatRequest struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history"`
}

// ChatResponse returns the reply together with the updated history the
// caller must resend on the next turn.
type ChatResponse struct {
	Reply   string        `json:"reply"`
	History []ChatMessage `json:"history"`
}
