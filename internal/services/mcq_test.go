package services

import (
	"fmt"
	"strings"
	"testing"
)

func mcqBlock(n int) string {
	return fmt.Sprintf(`Q%d: What is the central idea of concept %d?
A) First option
B) Second option
C) Third option
D) Fourth option
Correct Answer: B) Second option
Explanation: The second option captures the underlying principle.
`, n, n)
}

func wellFormedQuiz(count int) string {
	var b strings.Builder
	for i := 1; i <= count; i++ {
		b.WriteString(mcqBlock(i))
		b.WriteString("\n")
	}
	return b.String()
}

func TestParseMCQs_FiveWellFormedBlocks(t *testing.T) {
	mcqs := ParseMCQs(wellFormedQuiz(5))

	if len(mcqs) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(mcqs))
	}

	for i, q := range mcqs {
		if q.Question == "" {
			t.Errorf("Record %d: empty question", i)
		}
		if len(q.Options) != 4 {
			t.Errorf("Record %d: expected 4 options, got %d", i, len(q.Options))
		}
		if q.CorrectAnswer != "B) Second option" {
			t.Errorf("Record %d: expected correct answer %q, got %q", i, "B) Second option", q.CorrectAnswer)
		}
		if q.Explanation == "" {
			t.Errorf("Record %d: empty explanation", i)
		}
	}
}

func TestParseMCQs_QuestionLineOpensAndClosesRecords(t *testing.T) {
	raw := "Q1: First?\nA) one\nQ2: Second?\nB) two\n"

	mcqs := ParseMCQs(raw)
	if len(mcqs) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(mcqs))
	}
	if mcqs[0].Question != "Q1: First?" || len(mcqs[0].Options) != 1 {
		t.Errorf("First record corrupted: %+v", mcqs[0])
	}
	if mcqs[1].Question != "Q2: Second?" || len(mcqs[1].Options) != 1 {
		t.Errorf("Second record corrupted: %+v", mcqs[1])
	}
}

func TestParseMCQs_UnknownLinesDropped(t *testing.T) {
	raw := `Q1: Does noise corrupt state?
A) yes
Here is some commentary from the model.
B) no
*** markdown separator ***
Correct Answer: A) yes
note: lowercase marker is not a marker
Explanation: Noise lines must not touch set fields.
`
	mcqs := ParseMCQs(raw)
	if len(mcqs) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(mcqs))
	}

	q := mcqs[0]
	if len(q.Options) != 2 {
		t.Errorf("Expected 2 options, got %d: %v", len(q.Options), q.Options)
	}
	if q.CorrectAnswer != "A) yes" {
		t.Errorf("Correct answer corrupted by noise line: %q", q.CorrectAnswer)
	}
	if q.Explanation != "Noise lines must not touch set fields." {
		t.Errorf("Explanation corrupted: %q", q.Explanation)
	}
}

func TestParseMCQs_ExtraOptionLineStillAppended(t *testing.T) {
	raw := `Q1: How many options can come back?
A) one
B) two
C) three
D) four
A) a fifth option line
Correct Answer: A) one
Explanation: Option lines are appended in encounter order without a cap.
`
	mcqs := ParseMCQs(raw)
	if len(mcqs) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(mcqs))
	}
	if len(mcqs[0].Options) != 5 {
		t.Errorf("Expected 5 options, got %d", len(mcqs[0].Options))
	}
	if mcqs[0].Options[4] != "A) a fifth option line" {
		t.Errorf("Fifth option not kept in order: %v", mcqs[0].Options)
	}
}

func TestParseMCQs_FieldLinesBeforeFirstQuestionDiscarded(t *testing.T) {
	raw := `A) orphan option
Correct Answer: orphan
Q1: Real question?
A) real option
`
	mcqs := ParseMCQs(raw)
	if len(mcqs) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(mcqs))
	}
	if len(mcqs[0].Options) != 1 || mcqs[0].Options[0] != "A) real option" {
		t.Errorf("Orphan lines leaked into record: %+v", mcqs[0])
	}
	if mcqs[0].CorrectAnswer != "" {
		t.Errorf("Orphan correct answer leaked: %q", mcqs[0].CorrectAnswer)
	}
}

func TestParseMCQs_CorrectAnswerKeepsTextAfterFirstColon(t *testing.T) {
	raw := "Q1: Colon handling?\nCorrect Answer: B) Mitochondria: the powerhouse\n"

	mcqs := ParseMCQs(raw)
	if len(mcqs) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(mcqs))
	}
	if mcqs[0].CorrectAnswer != "B) Mitochondria: the powerhouse" {
		t.Errorf("Expected full text after first colon, got %q", mcqs[0].CorrectAnswer)
	}
}

func TestParseMCQs_IncompleteRecordsSurfacedAsIs(t *testing.T) {
	raw := `Q1: Complete question?
A) one
B) two
C) three
D) four
Correct Answer: A) one
Explanation: fine
Q2: Ragged question with two options and no answer?
A) only
B) two
`
	mcqs := ParseMCQs(raw)
	if len(mcqs) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(mcqs))
	}
	ragged := mcqs[1]
	if len(ragged.Options) != 2 {
		t.Errorf("Expected ragged record to keep its 2 options, got %d", len(ragged.Options))
	}
	if ragged.CorrectAnswer != "" || ragged.Explanation != "" {
		t.Errorf("Ragged record should keep empty fields: %+v", ragged)
	}
}

func TestParseMCQs_EmptyInput(t *testing.T) {
	if got := ParseMCQs(""); len(got) != 0 {
		t.Errorf("Expected no records for empty input, got %d", len(got))
	}
}
