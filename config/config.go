package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultPort        = "8080"
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultModel       = "llama3-70b-8192"
	defaultChunkChars  = 4000
	defaultSessionTTL  = time.Hour
)

// Config holds everything the gateway reads from the environment.
// The Groq key is captured here once and passed into the generator
// constructor; nothing reads it ad hoc later, so a missing key fails
// deterministically at the first generation attempt rather than at startup.
type Config struct {
	Port        string
	GroqAPIKey  string
	GroqBaseURL string
	Model       string

	// ChunkChars is the transcript length above which generation splits
	// the transcript into chunks and merges the per-chunk results.
	ChunkChars int

	// SessionTTL is how long an idle browser session is kept in memory.
	SessionTTL time.Duration
}

// Load builds the Config from environment variables, applying defaults
// for everything except the API key.
func Load() *Config {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqBaseURL: os.Getenv("GROQ_BASE_URL"),
		Model:       os.Getenv("GROQ_MODEL"),
		ChunkChars:  defaultChunkChars,
		SessionTTL:  defaultSessionTTL,
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.GroqBaseURL == "" {
		cfg.GroqBaseURL = defaultGroqBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}

	if v := os.Getenv("CHUNK_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ChunkChars = n
		}
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}

	return cfg
}
