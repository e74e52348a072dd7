package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizmaster/backend/internal/llm"
	"github.com/quizmaster/backend/internal/models"
)

type generatedQuestion struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correct_answer"`
	Difficulty    string `json:"difficulty"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseQuestions parses a raw model response into typed questions. The
// response must be a JSON array (optionally fence-wrapped) where every
// element carries a non-empty question, a non-empty correct_answer, and a
// recognized difficulty. Anything else is rejected whole — the caller falls
// back, it never repairs partial output.
func ParseQuestions(responseBody string) ([]models.Question, error) {
	cleaned := llm.StripCodeFences(responseBody)

	var parsed []generatedQuestion
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateQuestions(parsed); err != nil {
		return nil, err
	}

	questions := make([]models.Question, len(parsed))
	for i, q := range parsed {
		questions[i] = models.Question{
			Question:      q.Question,
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    models.Difficulty(q.Difficulty),
		}
	}
	return questions, nil
}

func validateQuestions(questions []generatedQuestion) error {
	var errs []string

	for i, q := range questions {
		qNum := i + 1

		if strings.TrimSpace(q.Question) == "" {
			errs = append(errs, fmt.Sprintf("question %d: missing or empty question", qNum))
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			errs = append(errs, fmt.Sprintf("question %d: missing or empty correct_answer", qNum))
		}
		if !models.ValidDifficulties[models.Difficulty(q.Difficulty)] {
			errs = append(errs, fmt.Sprintf("question %d: invalid difficulty %q", qNum, q.Difficulty))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
