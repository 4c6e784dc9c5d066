package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth (serve mode). Empty disables authentication.
	APIKey string

	// Similarity backend: "tfidf" (local) or "openai".
	SimilarityBackend string
	OpenAIAPIKey      string
	OpenAIModel       string

	// Worker pool for multi-document runs.
	WorkerCount int

	// Digest shape.
	TopSections int

	// Output
	OutputDir string

	// Upload limits (serve mode).
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		APIKey: os.Getenv("DOCSIFT_API_KEY"),

		SimilarityBackend: envOr("SIMILARITY_BACKEND", "tfidf"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       envOr("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),

		WorkerCount: envInt("WORKER_COUNT", 4),

		TopSections: envInt("TOP_SECTIONS", 5),

		OutputDir: envOr("OUTPUT_DIR", "output"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.TopSections <= 0 {
		cfg.TopSections = 5
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}

	return cfg
}

func (c Config) Validate() error {
	switch c.SimilarityBackend {
	case "tfidf":
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai similarity backend")
		}
	default:
		return fmt.Errorf("unknown SIMILARITY_BACKEND: %s", c.SimilarityBackend)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
