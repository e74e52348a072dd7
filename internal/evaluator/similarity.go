package evaluator

import "strings"

// Score computes the lexical overlap between a reference answer and a
// candidate answer as an integer 0-100. Both strings are lowercased and
// whitespace-tokenized into word sets; the score is the share of the
// reference vocabulary covered by the candidate, scaled and truncated.
//
// The measure is anchored on the reference: a candidate that repeats the
// reference plus extra unrelated words still scores up to 100. An empty
// reference yields 0.
func Score(reference, candidate string) int {
	referenceWords := wordSet(reference)
	if len(referenceWords) == 0 {
		return 0
	}

	candidateWords := wordSet(candidate)

	common := 0
	for w := range referenceWords {
		if candidateWords[w] {
			common++
		}
	}

	return int(float64(common) / float64(len(referenceWords)) * 100)
}

func wordSet(s string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		words[w] = true
	}
	return words
}
