package assessment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/quizmaster/backend/internal/extract"
	"github.com/quizmaster/backend/internal/models"
)

const (
	maxUploadBytes  = 10 << 20 // 10MB
	defaultCount    = 5
	minNumQuestions = 1
	maxNumQuestions = 20
)

type Handler struct {
	service       *Service
	model         string
	apiConfigured bool
}

func NewHandler(service *Service, model string, apiConfigured bool) *Handler {
	return &Handler{service: service, model: model, apiConfigured: apiConfigured}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No file provided"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No file selected"})
		return
	}

	if !extract.Supported(header.Filename) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid file type. Allowed: PDF, TXT, DOCX"})
		return
	}

	content, err := h.service.SaveAndExtract(file, header.Filename)
	if err != nil {
		if errors.Is(err, ErrContentTooShort) {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.UploadResponse{
		Success:       true,
		Content:       content,
		Filename:      header.Filename,
		ContentLength: len(content),
		WordCount:     len(strings.Fields(content)),
	})
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No content provided"})
		return
	}

	// Absent keys default; keys the caller sent are validated as-is, so an
	// explicit 0 or "" is rejected rather than coerced.
	numQuestions := defaultCount
	if req.NumQuestions != nil {
		numQuestions = *req.NumQuestions
	}
	if numQuestions < minNumQuestions || numQuestions > maxNumQuestions {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Number of questions must be between 1 and 20"})
		return
	}

	difficulty := models.DifficultyMedium
	if req.Difficulty != nil {
		difficulty = *req.Difficulty
	}
	if !models.ValidDifficulties[difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid difficulty level"})
		return
	}

	resp := h.service.GenerateQuestions(r.Context(), req.Content, numQuestions, difficulty)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) EvaluateAnswers(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if len(req.Submissions) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "No submissions provided"})
		return
	}

	resp, err := h.service.EvaluateAnswers(r.Context(), req.Submissions)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Evaluation failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().Format(time.RFC3339),
		Model:         h.model,
		APIConfigured: h.apiConfigured,
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
