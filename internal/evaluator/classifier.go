package evaluator

import (
	"strings"
	"unicode/utf8"
)

// Thresholds for the heuristic flags. These are declared heuristics, not
// detectors — false positives and negatives are expected.
const (
	plagiarismSimilarityThreshold = 90
	aiGeneratedMinLength          = 200
	aiGeneratedMinCommas          = 5
)

// Classify derives the plagiarism-suspicion and AI-generation-suspicion
// flags from an answer and its similarity score. Pure function, no remote
// call: near-verbatim overlap with the reference suggests copying; long,
// heavily comma-structured prose suggests generated text.
func Classify(userAnswer string, similarity int) (isPlagiarized, isAIGenerated bool) {
	isPlagiarized = similarity > plagiarismSimilarityThreshold
	isAIGenerated = utf8.RuneCountInString(userAnswer) > aiGeneratedMinLength &&
		strings.Count(userAnswer, ",") > aiGeneratedMinCommas
	return isPlagiarized, isAIGenerated
}
