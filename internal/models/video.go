package models

// VideoRequest is the payload for the summarize and quiz endpoints.
type VideoRequest struct {
	URL      string `json:"url"`
	Language string `json:"language"` // ISO-639-1 caption language, defaults to "en"
}

// SummaryResponse carries the generated summary plus a fixed set of
// reflection questions the frontend renders under it.
type SummaryResponse struct {
	Summary   string   `json:"summary"`
	Questions []string `json:"questions"`
}

// ValidateRequest is the payload for the pre-flight URL check.
type ValidateRequest struct {
	URL string `json:"url"`
}

// VideoInfo is the metadata returned by the pre-flight URL check.
type VideoInfo struct {
	VideoID         string `json:"video_id"`
	Title           string `json:"title"`
	Channel         string `json:"channel"`
	DurationSeconds int    `json:"duration_seconds"`
}
