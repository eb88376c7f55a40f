package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Gemini backend. An empty API key selects the offline generator.
	GeminiAPIKey string
	GeminiModel  string

	// Upload limits
	MaxUploadBytes int64

	// Pipeline defaults, overridable per request
	DefaultChunkSize    int
	DefaultChunkOverlap int
	DefaultTopK         int
}

func Load() Config {
	// A .env file is optional.
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8080"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-2.0-flash"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB

		DefaultChunkSize:    envInt("DEFAULT_CHUNK_SIZE", 1100),
		DefaultChunkOverlap: envInt("DEFAULT_CHUNK_OVERLAP", 200),
		DefaultTopK:         envInt("DEFAULT_TOP_K", 4),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultChunkSize <= 0 {
		cfg.DefaultChunkSize = 1100
	}
	if cfg.DefaultChunkOverlap < 0 {
		cfg.DefaultChunkOverlap = 200
	}
	if cfg.DefaultChunkOverlap >= cfg.DefaultChunkSize {
		cfg.DefaultChunkOverlap = cfg.DefaultChunkSize / 4
	}
	if cfg.DefaultTopK <= 0 {
		cfg.DefaultTopK = 4
	}

	return cfg
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
