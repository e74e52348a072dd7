package generator

import (
	"context"
	"fmt"
	"log"

	"github.com/quizmaster/backend/internal/llm"
	"github.com/quizmaster/backend/internal/models"
)

const generationMaxTokens = 4000

// Generator produces assessment questions from document text. The model path
// is tried exactly once; any call, parse, or validation failure degrades to
// template-based fallback, so generation never fails for valid input.
type Generator struct {
	llm llm.Client
}

func New(client llm.Client) *Generator {
	return &Generator{llm: client}
}

// GenerateQuestions returns exactly numQuestions questions when the model
// path succeeds, and at most numQuestions via fallback otherwise.
func (g *Generator) GenerateQuestions(ctx context.Context, content string, numQuestions int, difficulty models.Difficulty) []models.Question {
	questions, err := g.generateWithModel(ctx, content, numQuestions, difficulty)
	if err != nil {
		log.Printf("WARN: model generation failed: %v, using fallback questions", err)
		return GenerateFallback(content, numQuestions, difficulty)
	}
	return questions
}

func (g *Generator) generateWithModel(ctx context.Context, content string, numQuestions int, difficulty models.Difficulty) ([]models.Question, error) {
	systemPrompt := GenerationSystemPrompt()
	userPrompt := BuildGenerationUserPrompt(content, numQuestions, difficulty)

	resp, err := g.llm.Generate(ctx, systemPrompt, userPrompt, generationMaxTokens)
	if err != nil {
		return nil, err
	}

	questions, err := ParseQuestions(resp.Content)
	if err != nil {
		return nil, err
	}

	// An under-produced batch is rejected like any other malformed response:
	// the output is all-model or all-fallback, never a mix.
	if len(questions) < numQuestions {
		return nil, &ValidationError{Errors: []string{
			fmt.Sprintf("expected %d questions, got %d", numQuestions, len(questions)),
		}}
	}

	// Defend against over-production, and stamp the requested difficulty so
	// every returned question carries the level the caller asked for.
	questions = questions[:numQuestions]
	for i := range questions {
		questions[i].Difficulty = difficulty
	}

	return questions, nil
}
