package main

import (
	"context"
	"database/sql"
	_ "embed"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/growthapp/flashpoint-ai-bridge/internal/ai"
	"github.com/growthapp/flashpoint-ai-bridge/internal/flashpoint"
)

//go:embed index.html
var indexHTML string

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// --- Dataset source ---
	var dataset flashpoint.Dataset
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("db open error: %v", err)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db ping error: %v", err)
		}

		dataset = flashpoint.NewPgDataset(db)
	} else {
		dataFile := os.Getenv("DATA_FILE")
		if dataFile == "" {
			dataFile = "output.jsonl"
		}
		dataset = flashpoint.NewFileDataset(dataFile)
	}

	// Fail soft: without data the session still runs, classification is
	// skipped and replies carry a no-data context.
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 10*time.Second)
	records, err := dataset.Load(loadCtx)
	loadCancel()
	if err != nil {
		log.Printf("[dataset] flashpoint data unavailable: %v", err)
	}
	log.Printf("[dataset] %d flashpoint records loaded", len(records))

	// --- Completion client ---
	var aiClient ai.Completion
	if os.Getenv("AI_PROVIDER") == "openai" {
		aiClient = ai.NewOpenAIClient()
	} else {
		aiClient = ai.NewOllamaClient()
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// --- Flashpoint module wiring ---
	svc := flashpoint.NewService(records, aiClient)
	h := flashpoint.NewHandler(svc)

	flashpoint.RegisterRoutes(r, h)

	// --- UI + health ---
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, indexHTML)
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	log.Printf("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
