package generator

import (
	"strings"
	"unicode/utf8"

	"github.com/quizmaster/backend/internal/models"
)

// Template-based generation used whenever the model path fails. Deterministic
// given identical input.

const (
	maxFallbackSentences = 10
	minSentenceLength    = 21 // trimmed sentences must exceed 20 chars
	topicLength          = 50
	answerPrefix         = "Based on the content: "
)

var fallbackTemplates = map[models.Difficulty][]string{
	models.DifficultyEasy: {
		"What is mentioned about {topic}?",
		"According to the text, what is {topic}?",
		"Describe {topic} as mentioned in the document.",
	},
	models.DifficultyMedium: {
		"Explain the significance of {topic} in the context of the document.",
		"How does {topic} relate to the main themes discussed?",
		"Analyze the role of {topic} in the given content.",
	},
	models.DifficultyHard: {
		"Critically evaluate the implications of {topic} based on the content.",
		"Synthesize the information about {topic} and propose potential applications.",
		"Compare and contrast different perspectives on {topic} presented in the text.",
	},
}

// GenerateFallback derives questions directly from the source text: one per
// qualifying sentence, cycling through the difficulty's template bank. It
// returns fewer than numQuestions when the text has fewer qualifying
// sentences — callers must not assume an exact count from this path.
func GenerateFallback(content string, numQuestions int, difficulty models.Difficulty) []models.Question {
	sentences := candidateSentences(content)
	templates := fallbackTemplates[difficulty]

	count := numQuestions
	if len(sentences) < count {
		count = len(sentences)
	}

	questions := make([]models.Question, 0, count)
	for i := 0; i < count; i++ {
		topic := truncate(sentences[i], topicLength)
		template := templates[i%len(templates)]

		questions = append(questions, models.Question{
			Question:      strings.ReplaceAll(template, "{topic}", topic),
			CorrectAnswer: answerPrefix + sentences[i],
			Difficulty:    difficulty,
		})
	}

	return questions
}

// candidateSentences splits content on periods and keeps the first 10 trimmed
// fragments long enough to anchor a question. Short fragments (headers, list
// markers) are discarded.
func candidateSentences(content string) []string {
	var sentences []string
	for _, s := range strings.Split(content, ".") {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) >= minSentenceLength {
			sentences = append(sentences, s)
		}
		if len(sentences) == maxFallbackSentences {
			break
		}
	}
	return sentences
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
