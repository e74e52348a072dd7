package generator

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/quizmaster/backend/internal/llm"
	"github.com/quizmaster/backend/internal/models"
)

// stubClient returns a fixed response (or error) for every call.
type stubClient struct {
	content string
	err     error
	calls   int
}

func (s *stubClient) Generate(ctx context.Context, systemPrompt string, userPrompt string, maxTokens int) (*llm.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Response{Content: s.content}, nil
}

const fallbackContent = "Machine learning is a subset of artificial intelligence. Neural networks learn representations from data automatically. Training requires large labeled datasets and careful evaluation."

func TestGenerateQuestions_PrimaryPathExactCount(t *testing.T) {
	stub := &stubClient{content: validQuestionsJSON(6)}
	gen := New(stub)

	for _, count := range []int{1, 3, 6} {
		questions := gen.GenerateQuestions(context.Background(), fallbackContent, count, models.DifficultyHard)

		if len(questions) != count {
			t.Errorf("count %d: expected exactly %d questions, got %d", count, count, len(questions))
		}
		for i, q := range questions {
			if q.Question == "" || q.CorrectAnswer == "" {
				t.Errorf("count %d: question %d has empty fields", count, i+1)
			}
			if q.Difficulty != models.DifficultyHard {
				t.Errorf("count %d: question %d should carry the requested difficulty, got %q", count, i+1, q.Difficulty)
			}
		}
	}
}

func TestGenerateQuestions_SlicesOverProduction(t *testing.T) {
	stub := &stubClient{content: validQuestionsJSON(10)}
	gen := New(stub)

	questions := gen.GenerateQuestions(context.Background(), fallbackContent, 4, models.DifficultyEasy)
	if len(questions) != 4 {
		t.Errorf("expected over-produced batch sliced to 4, got %d", len(questions))
	}
}

func TestGenerateQuestions_RemoteFailureFallsBack(t *testing.T) {
	stub := &stubClient{err: fmt.Errorf("connection refused")}
	gen := New(stub)

	questions := gen.GenerateQuestions(context.Background(), fallbackContent, 2, models.DifficultyMedium)

	if stub.calls != 1 {
		t.Errorf("expected exactly one remote call (no retry), got %d", stub.calls)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 fallback questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !strings.HasPrefix(q.CorrectAnswer, "Based on the content: ") {
			t.Errorf("expected fallback answer, got %q", q.CorrectAnswer)
		}
	}
}

func TestGenerateQuestions_MalformedResponseFallsBack(t *testing.T) {
	stub := &stubClient{content: "Sorry, I can't help with that."}
	gen := New(stub)

	questions := gen.GenerateQuestions(context.Background(), fallbackContent, 2, models.DifficultyMedium)
	if len(questions) != 2 {
		t.Fatalf("expected 2 fallback questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !strings.HasPrefix(q.CorrectAnswer, "Based on the content: ") {
			t.Errorf("expected fallback answer, got %q", q.CorrectAnswer)
		}
	}
}

func TestGenerateQuestions_UnderProductionFallsBack(t *testing.T) {
	stub := &stubClient{content: validQuestionsJSON(2)}
	gen := New(stub)

	questions := gen.GenerateQuestions(context.Background(), fallbackContent, 3, models.DifficultyMedium)

	// 2 model questions for a request of 3: the batch is discarded whole and
	// fallback serves the request instead.
	if len(questions) != 3 {
		t.Fatalf("expected 3 fallback questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !strings.HasPrefix(q.CorrectAnswer, "Based on the content: ") {
			t.Errorf("expected fallback answer, got %q", q.CorrectAnswer)
		}
	}
}

func TestGenerateQuestions_NeverErrors(t *testing.T) {
	// Empty content and a dead client: still returns (an empty slice), never panics.
	stub := &stubClient{err: fmt.Errorf("service unavailable")}
	gen := New(stub)

	questions := gen.GenerateQuestions(context.Background(), "", 5, models.DifficultyEasy)
	if len(questions) != 0 {
		t.Errorf("expected no questions from empty content, got %d", len(questions))
	}
}
