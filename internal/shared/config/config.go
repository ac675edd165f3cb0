package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	ObjectStoreType string
	LocalStoreDir   string
	PublicBaseURL   string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string

	LLMProvider  string
	LLMModel     string
	OpenAIAPIKey string
	GCPProjectID string
	GCPRegion    string

	RedisURL      string
	CaptchaSecret string

	// MaxResumeChars overrides the per-template extracted-text ceiling when > 0.
	MaxResumeChars int
	Version        string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./data"),
		PublicBaseURL:   strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		LLMProvider:     normalizeProvider(getEnv("LLM_PROVIDER", "openai")),
		LLMModel:        getEnv("LLM_MODEL", ""),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		GCPProjectID:    getEnv("GCP_PROJECT_ID", ""),
		GCPRegion:       getEnv("GCP_REGION", "us-central1"),
		RedisURL:        getEnv("REDIS_URL", ""),
		CaptchaSecret:   os.Getenv("RECAPTCHA_SECRET"),
		MaxResumeChars:  getEnvInt("MAX_RESUME_CHARS", 0),
		Version:         getEnv("GENERATOR_VERSION", "1.0"),
	}
}

// Validate enforces the settings that are mandatory outside dev-like environments.
func (c Config) Validate() error {
	if !c.IsDevLike() {
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required")
		}
		if strings.TrimSpace(c.CaptchaSecret) == "" {
			return fmt.Errorf("RECAPTCHA_SECRET is required")
		}
		switch c.LLMProvider {
		case "openai":
			if strings.TrimSpace(c.OpenAIAPIKey) == "" {
				return fmt.Errorf("OPENAI_API_KEY is required for LLM_PROVIDER=openai")
			}
		case "gemini":
			if strings.TrimSpace(c.GCPProjectID) == "" {
				return fmt.Errorf("GCP_PROJECT_ID is required for LLM_PROVIDER=gemini")
			}
		default:
			return fmt.Errorf("LLM_PROVIDER must be openai or gemini")
		}
		if strings.TrimSpace(c.LLMModel) == "" {
			return fmt.Errorf("LLM_MODEL is required")
		}
		if c.ObjectStoreType == "s3" && (c.S3Bucket == "" || c.AWSRegion == "") {
			return fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET and AWS_REGION")
		}
	}
	return nil
}

// IsDevLike reports whether the environment tolerates missing backends.
func (c Config) IsDevLike() bool {
	switch c.Env {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "vertex":
		return "gemini"
	case "openai":
		return "openai"
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}
