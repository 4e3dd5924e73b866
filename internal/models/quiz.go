package models

// MCQ is one parsed multiple-choice question. Options keep the model's
// label prefixes ("A) ...") in encounter order; a record may come back
// with fewer than 4 options or an empty correct answer when the model
// strays from the template — such records are surfaced as-is.
type MCQ struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// MCQResponse is the quiz endpoint response body.
type MCQResponse struct {
	MCQs []MCQ `json:"mcqs"`
}
