package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	AnalyzerMock    = "mock"
	AnalyzerMLModel = "mlmodel"
	AnalyzerOpenAI  = "openai"
)

type Config struct {
	Port       string
	APIBaseURL string
	GinMode    string

	// Credentials; every integration is optional and falls back to a local stand-in.
	FirebaseCredentials string
	OpenAIAPIKey        string
	MapsAPIKey          string
	MLModelURL          string
	NatsURL             string

	Analyzer      string
	AnalysisDelay time.Duration

	DigestSchedule string
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, []string, error) {
	var loaded []string
	for _, path := range []string{".env", "/app/.env"} {
		if err := godotenv.Load(path); err == nil {
			loaded = append(loaded, path)
			break
		}
	}

	cfg := &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		APIBaseURL:          getEnvOrDefault("API_BASE_URL", "http://localhost:8080"),
		GinMode:             os.Getenv("GIN_MODE"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		MapsAPIKey:          os.Getenv("MAPS_CREDENTIALS"),
		MLModelURL:          os.Getenv("ML_MODEL_URL"),
		NatsURL:             os.Getenv("NATS_URL"),
		Analyzer:            strings.ToLower(getEnvOrDefault("ANALYZER", AnalyzerMock)),
		DigestSchedule:      getEnvOrDefault("DIGEST_SCHEDULE", "0 * * * *"),
	}

	delay, err := time.ParseDuration(getEnvOrDefault("ANALYSIS_DELAY", "3s"))
	if err != nil {
		return nil, loaded, fmt.Errorf("invalid ANALYSIS_DELAY: %w", err)
	}
	cfg.AnalysisDelay = delay

	if err := cfg.Validate(); err != nil {
		return nil, loaded, err
	}
	return cfg, loaded, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.AnalysisDelay < 0 {
		return fmt.Errorf("ANALYSIS_DELAY must not be negative")
	}

	switch c.Analyzer {
	case AnalyzerMock:
	case AnalyzerMLModel:
		if c.MLModelURL == "" {
			return fmt.Errorf("ML_MODEL_URL is required when ANALYZER=%s", AnalyzerMLModel)
		}
	case AnalyzerOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when ANALYZER=%s", AnalyzerOpenAI)
		}
	default:
		return fmt.Errorf("unknown ANALYZER %q", c.Analyzer)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
