package evaluator

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/quizmaster/backend/internal/llm"
	"github.com/quizmaster/backend/internal/models"
)

const evaluationMaxTokens = 1000

// Performance level thresholds on the batch average score.
const (
	excellentThreshold = 80
	goodThreshold      = 60
)

// Evaluator scores free-form answers against reference answers. The model
// path is tried exactly once per submission; any call, parse, or validation
// failure degrades that submission to the heuristic fallback, so evaluation
// never fails for valid input.
type Evaluator struct {
	llm llm.Client
}

func New(client llm.Client) *Evaluator {
	return &Evaluator{llm: client}
}

// Evaluate scores one answer. The returned evaluation comes from exactly one
// of the model path or the fallback path, never a mix.
func (e *Evaluator) Evaluate(ctx context.Context, question, correctAnswer, userAnswer string) models.Evaluation {
	evaluation, err := e.evaluateWithModel(ctx, question, correctAnswer, userAnswer)
	if err != nil {
		log.Printf("WARN: model evaluation failed: %v, using fallback evaluation", err)
		return FallbackEvaluation(userAnswer, correctAnswer)
	}
	return evaluation
}

func (e *Evaluator) evaluateWithModel(ctx context.Context, question, correctAnswer, userAnswer string) (models.Evaluation, error) {
	systemPrompt := EvaluationSystemPrompt()
	userPrompt := BuildEvaluationUserPrompt(question, correctAnswer, userAnswer)

	resp, err := e.llm.Generate(ctx, systemPrompt, userPrompt, evaluationMaxTokens)
	if err != nil {
		return models.Evaluation{}, err
	}

	return ParseEvaluation(resp.Content)
}

// BatchResult pairs per-submission results with their derived summary.
type BatchResult struct {
	Results []models.Result
	Summary models.Summary
}

// EvaluateBatch scores each submission in input order and folds the outcomes
// into a summary. An empty batch is a caller error, not a zero summary.
func (e *Evaluator) EvaluateBatch(ctx context.Context, submissions []models.Submission) (*BatchResult, error) {
	if len(submissions) == 0 {
		return nil, fmt.Errorf("no submissions to evaluate")
	}

	results := make([]models.Result, 0, len(submissions))
	totalScore := 0
	totalTime := 0.0
	plagiarismDetected := false
	aiGeneratedDetected := false

	for _, sub := range submissions {
		evaluation := e.Evaluate(ctx, sub.Question, sub.CorrectAnswer, sub.UserAnswer)

		results = append(results, models.Result{
			Question:      sub.Question,
			UserAnswer:    sub.UserAnswer,
			CorrectAnswer: sub.CorrectAnswer,
			TimeTaken:     sub.TimeTaken,
			Evaluation:    evaluation,
		})

		totalScore += evaluation.CorrectnessScore
		totalTime += sub.TimeTaken
		plagiarismDetected = plagiarismDetected || evaluation.IsPlagiarized
		aiGeneratedDetected = aiGeneratedDetected || evaluation.IsAIGenerated
	}

	avgScore := roundTo2(float64(totalScore) / float64(len(submissions)))

	return &BatchResult{
		Results: results,
		Summary: models.Summary{
			TotalQuestions:      len(submissions),
			AverageScore:        avgScore,
			TotalTime:           totalTime,
			PerformanceLevel:    performanceLevel(avgScore),
			PlagiarismDetected:  plagiarismDetected,
			AIGeneratedDetected: aiGeneratedDetected,
		},
	}, nil
}

func performanceLevel(avgScore float64) string {
	switch {
	case avgScore >= excellentThreshold:
		return models.PerformanceExcellent
	case avgScore >= goodThreshold:
		return models.PerformanceGood
	default:
		return models.PerformanceNeedsImprovement
	}
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
