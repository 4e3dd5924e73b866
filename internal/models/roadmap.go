package models

// RoadmapRequest is the payload for the roadmap endpoint. StartDate is
// an opaque string passed straight into the prompt, never date-parsed.
type RoadmapRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartDate      string `json:"start_date"`
	DurationMonths int    `json:"duration_months"`
	Notes          string `json:"notes"`
}

// RoadmapResponse is the roadmap endpoint response body.
type RoadmapResponse struct {
	Roadmap string `json:"roadmap"`
}
