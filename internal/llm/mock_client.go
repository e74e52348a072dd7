package llm

import (
	"context"
	"fmt"
	"strings"
)

// MockClient returns canned JSON for local development without API access.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string, maxTokens int) (*Response, error) {
	content := buildMockQuestionsJSON()
	if strings.Contains(userPrompt, "Evaluate the following answer") {
		content = mockEvaluationJSON
	}
	return &Response{
		Content:      content,
		PromptTokens: 500,
		OutputTokens: 800,
	}, nil
}

const mockEvaluationJSON = `{
  "correctness_score": 72,
  "similarity_score": 64,
  "is_plagiarized": false,
  "is_ai_generated": false,
  "feedback": "[Mock] Your answer covers the main idea but misses supporting detail from the source material."
}`

func buildMockQuestionsJSON() string {
	topics := []string{
		"photosynthesis", "supply and demand", "the water cycle",
		"neural networks", "plate tectonics", "the industrial revolution",
	}
	difficulties := []string{"easy", "medium", "hard"}

	questions := "["
	for i := 0; i < 6; i++ {
		topic := topics[i%len(topics)]
		difficulty := difficulties[i%len(difficulties)]

		if i > 0 {
			questions += ","
		}
		questions += fmt.Sprintf(`{"question":"[Mock] What does the document say about %s?","correct_answer":"[Mock] The document explains that %s is a central concept developed across several sections, with supporting evidence and examples.","difficulty":"%s"}`,
			topic, topic, difficulty)
	}
	questions += "]"

	return questions
}
