package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// Performance levels derived from the batch average score.
const (
	PerformanceExcellent        = "Excellent"
	PerformanceGood             = "Good"
	PerformanceNeedsImprovement = "Needs Improvement"
)

// ── Core Structs ───────────────────────────────────────

// Question is one generated question with its reference answer. Immutable
// once created; later echoed back inside a Submission.
type Question struct {
	Question      string     `json:"question"`
	CorrectAnswer string     `json:"correct_answer"`
	Difficulty    Difficulty `json:"difficulty"`
}

// Submission is one user-answered question awaiting evaluation. Missing
// fields default to empty/zero — no validation beyond presence.
type Submission struct {
	Question      string  `json:"question"`
	CorrectAnswer string  `json:"correct_answer"`
	UserAnswer    string  `json:"user_answer"`
	TimeTaken     float64 `json:"time_taken"`
}

// Evaluation is the scored outcome for a single submission. Produced by
// exactly one of the remote path or the fallback path, never partially.
type Evaluation struct {
	CorrectnessScore int    `json:"correctness_score"`
	SimilarityScore  int    `json:"similarity_score"`
	IsPlagiarized    bool   `json:"is_plagiarized"`
	IsAIGenerated    bool   `json:"is_ai_generated"`
	Feedback         string `json:"feedback"`
}

// Result is a Submission merged with its Evaluation.
type Result struct {
	Question      string  `json:"question"`
	UserAnswer    string  `json:"user_answer"`
	CorrectAnswer string  `json:"correct_answer"`
	TimeTaken     float64 `json:"time_taken"`
	Evaluation
}

// Summary aggregates a batch of results. Derived, never stored.
type Summary struct {
	TotalQuestions      int     `json:"total_questions"`
	AverageScore        float64 `json:"average_score"`
	TotalTime           float64 `json:"total_time"`
	PerformanceLevel    string  `json:"performance_level"`
	PlagiarismDetected  bool    `json:"plagiarism_detected"`
	AIGeneratedDetected bool    `json:"ai_generated_detected"`
}

// ── Request Types ─────────────────────────────────────

// GenerateQuestionsRequest uses pointer fields so an absent key (defaulted)
// is distinguishable from an explicit invalid value (rejected).
type GenerateQuestionsRequest struct {
	Content      string      `json:"content"`
	NumQuestions *int        `json:"num_questions"`
	Difficulty   *Difficulty `json:"difficulty"`
}

type EvaluateAnswersRequest struct {
	Submissions []Submission `json:"submissions"`
}

// ── Response Types ────────────────────────────────────

type UploadResponse struct {
	Success       bool   `json:"success"`
	Content       string `json:"content"`
	Filename      string `json:"filename"`
	ContentLength int    `json:"content_length"`
	WordCount     int    `json:"word_count"`
}

type GenerateQuestionsResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type EvaluateAnswersResponse struct {
	Success bool     `json:"success"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

type HealthResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	Model         string `json:"model"`
	APIConfigured bool   `json:"api_configured"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
