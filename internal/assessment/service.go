package assessment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/quizmaster/backend/internal/evaluator"
	"github.com/quizmaster/backend/internal/extract"
	"github.com/quizmaster/backend/internal/generator"
	"github.com/quizmaster/backend/internal/models"
)

// minContentLength is the smallest extracted document the pipeline accepts.
const minContentLength = 50

// ErrContentTooShort is returned when an uploaded document yields too little
// text to generate questions from.
var ErrContentTooShort = errors.New("Document content too short. Please upload a document with more text.")

type Service struct {
	generator *generator.Generator
	evaluator *evaluator.Evaluator
	uploadDir string
}

func NewService(gen *generator.Generator, eval *evaluator.Evaluator, uploadDir string) *Service {
	return &Service{
		generator: gen,
		evaluator: eval,
		uploadDir: uploadDir,
	}
}

// SaveAndExtract stores the upload under a unique name, extracts its text,
// and removes the stored file whether extraction succeeds or fails. Uploads
// are transient — extraction is the only reason the bytes touch disk.
func (s *Service) SaveAndExtract(src io.Reader, filename string) (string, error) {
	uniqueName := uuid.NewString() + "_" + filepath.Base(filename)
	path := filepath.Join(s.uploadDir, uniqueName)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	_, copyErr := io.Copy(dst, src)
	if err := dst.Close(); err != nil && copyErr == nil {
		copyErr = err
	}
	if copyErr != nil {
		os.Remove(path)
		return "", fmt.Errorf("save upload: %w", copyErr)
	}

	defer func() {
		if err := os.Remove(path); err != nil {
			log.Printf("WARN: failed to remove upload %s: %v", path, err)
		}
	}()

	content, err := extract.Document(path, filename)
	if err != nil {
		return "", err
	}

	if len(content) < minContentLength {
		return "", ErrContentTooShort
	}

	return content, nil
}

func (s *Service) GenerateQuestions(ctx context.Context, content string, numQuestions int, difficulty models.Difficulty) models.GenerateQuestionsResponse {
	questions := s.generator.GenerateQuestions(ctx, content, numQuestions, difficulty)
	return models.GenerateQuestionsResponse{
		Success:        true,
		Questions:      questions,
		TotalQuestions: len(questions),
	}
}

func (s *Service) EvaluateAnswers(ctx context.Context, submissions []models.Submission) (*models.EvaluateAnswersResponse, error) {
	batch, err := s.evaluator.EvaluateBatch(ctx, submissions)
	if err != nil {
		return nil, err
	}
	return &models.EvaluateAnswersResponse{
		Success: true,
		Results: batch.Results,
		Summary: batch.Summary,
	}, nil
}
