package generator

import (
	"fmt"

	"github.com/quizmaster/backend/internal/models"
)

// maxContentChars bounds how much document text is sent to the model.
const maxContentChars = 4000

var difficultyGuidance = map[models.Difficulty]string{
	models.DifficultyEasy:   "Simple recall and basic understanding questions",
	models.DifficultyMedium: "Application and analysis questions requiring deeper understanding",
	models.DifficultyHard:   "Complex synthesis, evaluation, and critical thinking questions",
}

func GenerationSystemPrompt() string {
	return `You are an expert assessment question writer. You derive open-ended questions from source documents and provide a reference answer for each.

Your questions must:
- Be specific to the content provided — no general-knowledge questions
- Test understanding, not just memorization
- Come with a detailed, self-contained correct answer

You must respond with valid JSON only. No markdown, no explanation outside the JSON.`
}

func BuildGenerationUserPrompt(content string, numQuestions int, difficulty models.Difficulty) string {
	return fmt.Sprintf(`Based on the following content, generate exactly %d %s difficulty questions.

Content:
%s

Requirements:
- Generate %s level questions: %s
- Provide the correct answer for each question
- Make questions specific to the content provided
- Ensure questions test understanding, not just memorization

Return ONLY a valid JSON array in this exact format:
[
  {
    "question": "Question text here?",
    "correct_answer": "Detailed correct answer here",
    "difficulty": "%s"
  }
]

Do not include any other text, explanations, or markdown formatting. Just the JSON array.`,
		numQuestions, string(difficulty), truncate(content, maxContentChars),
		string(difficulty), difficultyGuidance[difficulty], string(difficulty))
}

// GetDifficultyGuidance returns the prompt guidance line for a difficulty.
func GetDifficultyGuidance(difficulty models.Difficulty) string {
	return difficultyGuidance[difficulty]
}
