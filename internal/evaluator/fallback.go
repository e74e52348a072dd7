package evaluator

import (
	"fmt"

	"github.com/quizmaster/backend/internal/models"
)

// correctnessBonus is the fixed leniency added on top of raw similarity when
// scoring without the model, capped at 100.
const correctnessBonus = 10

const (
	feedbackPraise   = "Good job!"
	feedbackCritique = "Please review the topic and try to provide more relevant information."
)

// FallbackEvaluation scores an answer with the lexical scorer and heuristic
// classifier alone. Used whenever the model path is unusable.
func FallbackEvaluation(userAnswer, correctAnswer string) models.Evaluation {
	similarity := Score(correctAnswer, userAnswer)

	correctness := similarity + correctnessBonus
	if correctness > 100 {
		correctness = 100
	}

	isPlagiarized, isAIGenerated := Classify(userAnswer, similarity)

	feedback := fmt.Sprintf("Your answer shows %d%% similarity to the expected answer. ", similarity)
	if correctness > 70 {
		feedback += feedbackPraise
	} else {
		feedback += feedbackCritique
	}

	return models.Evaluation{
		CorrectnessScore: correctness,
		SimilarityScore:  similarity,
		IsPlagiarized:    isPlagiarized,
		IsAIGenerated:    isAIGenerated,
		Feedback:         feedback,
	}
}
