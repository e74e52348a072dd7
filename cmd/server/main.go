package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/quizmaster/backend/internal/assessment"
	"github.com/quizmaster/backend/internal/evaluator"
	"github.com/quizmaster/backend/internal/generator"
	"github.com/quizmaster/backend/internal/llm"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: could not load .env: %v", err)
	}

	uploadDir := getEnv("UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	// The LLM client is built once here and injected into both orchestrators.
	client, model := llm.NewFromEnv()
	gen := generator.New(client)
	eval := evaluator.New(client)

	service := assessment.NewService(gen, eval, uploadDir)
	handler := assessment.NewHandler(service, model, os.Getenv("ANTHROPIC_API_KEY") != "")

	// Setup router
	r := mux.NewRouter()
	r.HandleFunc("/upload", handler.Upload).Methods("POST")
	r.HandleFunc("/generate-questions", handler.GenerateQuestions).Methods("POST")
	r.HandleFunc("/evaluate-answers", handler.EvaluateAnswers).Methods("POST")
	r.HandleFunc("/health", handler.Health).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	port := getEnv("PORT", "8080")

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
