package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Extractor ExtractorConfig
	LLM       LLMConfig
	Archive   ArchiveConfig
}

// ExtractorConfig selects and tunes the text-acquisition collaborator.
type ExtractorConfig struct {
	Backend   string // "pdf" (pure Go) or "pdftotext"
	Pdftotext string // binary name or absolute path
}

// LLMConfig holds enhancement-related configuration
type LLMConfig struct {
	Provider    string // "openai" | "anthropic" | "" (heuristics only)
	Model       string
	APIKey      string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ArchiveConfig holds run-history configuration
type ArchiveConfig struct {
	Path string // sqlite file; empty disables archiving
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	cfg := &Config{
		Extractor: ExtractorConfig{
			Backend:   getEnv("DOCEXTRACT_EXTRACTOR", "pdf"),
			Pdftotext: getEnv("PDFTOTEXT_BIN", "pdftotext"),
		},
		LLM: LLMConfig{
			Provider:    getEnv("DOCEXTRACT_LLM", ""),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			MaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 4000),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
		},
		Archive: ArchiveConfig{
			Path: getEnv("DOCEXTRACT_ARCHIVE", ""),
		},
	}
	switch cfg.LLM.Provider {
	case "anthropic":
		cfg.LLM.Model = getEnv("ANTHROPIC_MODEL", "claude-3-sonnet-20240229")
		cfg.LLM.APIKey = getEnv("ANTHROPIC_API_KEY", "")
	default:
		cfg.LLM.Model = getEnv("OPENAI_MODEL", "gpt-4")
		cfg.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
	}
	return cfg
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	switch c.Extractor.Backend {
	case "pdf", "pdftotext":
	default:
		return NewAppError("CONFIG_ERROR", "DOCEXTRACT_EXTRACTOR must be pdf or pdftotext", ErrInvalidInput)
	}
	if c.LLM.Provider != "" && c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "API key is required when an LLM provider is set", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
