package evaluator

import "fmt"

func EvaluationSystemPrompt() string {
	return `You are an expert grader. You assess free-form answers against a reference answer and report calibrated scores.

You must respond with valid JSON only. No markdown, no explanation outside the JSON.`
}

func BuildEvaluationUserPrompt(question, correctAnswer, userAnswer string) string {
	return fmt.Sprintf(`Evaluate the following answer:

Question: %s
Expected Answer: %s
User's Answer: %s

Provide a comprehensive evaluation in JSON format with these metrics:
1. correctness_score: 0-100 (how correct is the answer)
2. similarity_score: 0-100 (how similar to expected answer)
3. is_plagiarized: true/false (if copied from source)
4. is_ai_generated: true/false (likelihood of AI generation)
5. feedback: detailed feedback string

Return ONLY valid JSON:
{
  "correctness_score": 85,
  "similarity_score": 75,
  "is_plagiarized": false,
  "is_ai_generated": false,
  "feedback": "Your answer is..."
}`, question, correctAnswer, userAnswer)
}
