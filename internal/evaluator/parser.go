package evaluator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/quizmaster/backend/internal/llm"
	"github.com/quizmaster/backend/internal/models"
)

// Pointer fields distinguish a key that is absent from one that carries a
// zero value — an evaluation missing any required key is rejected whole.
type modelEvaluation struct {
	CorrectnessScore *int    `json:"correctness_score"`
	SimilarityScore  *int    `json:"similarity_score"`
	IsPlagiarized    *bool   `json:"is_plagiarized"`
	IsAIGenerated    *bool   `json:"is_ai_generated"`
	Feedback         *string `json:"feedback"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ParseEvaluation parses a raw model response into a typed evaluation. The
// response must be a JSON object (optionally fence-wrapped) carrying all five
// required keys with scores in 0-100; a structurally incomplete result is
// discarded entirely and the caller falls back.
func ParseEvaluation(responseBody string) (models.Evaluation, error) {
	cleaned := llm.StripCodeFences(responseBody)

	var parsed modelEvaluation
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return models.Evaluation{}, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateEvaluation(parsed); err != nil {
		return models.Evaluation{}, err
	}

	return models.Evaluation{
		CorrectnessScore: *parsed.CorrectnessScore,
		SimilarityScore:  *parsed.SimilarityScore,
		IsPlagiarized:    *parsed.IsPlagiarized,
		IsAIGenerated:    *parsed.IsAIGenerated,
		Feedback:         *parsed.Feedback,
	}, nil
}

func validateEvaluation(e modelEvaluation) error {
	var errs []string

	if e.CorrectnessScore == nil {
		errs = append(errs, "missing correctness_score")
	} else if *e.CorrectnessScore < 0 || *e.CorrectnessScore > 100 {
		errs = append(errs, fmt.Sprintf("correctness_score %d outside range [0, 100]", *e.CorrectnessScore))
	}

	if e.SimilarityScore == nil {
		errs = append(errs, "missing similarity_score")
	} else if *e.SimilarityScore < 0 || *e.SimilarityScore > 100 {
		errs = append(errs, fmt.Sprintf("similarity_score %d outside range [0, 100]", *e.SimilarityScore))
	}

	if e.IsPlagiarized == nil {
		errs = append(errs, "missing is_plagiarized")
	}
	if e.IsAIGenerated == nil {
		errs = append(errs, "missing is_ai_generated")
	}
	if e.Feedback == nil {
		errs = append(errs, "missing feedback")
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}

	return nil
}
