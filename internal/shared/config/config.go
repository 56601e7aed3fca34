package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string
	LocalStoreDir   string
	PublicBaseURL   string

	// OCR engine binaries and language.
	TesseractBin  string
	PdftoppmBin   string
	TesseractLang string
	OCRDpi        int

	// Document verification.
	VerifyDocuments bool
	MatchThreshold  float64

	// LLM email composition.
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// SMTP delivery.
	SMTPHost       string
	SMTPPort       int
	SenderEmail    string
	SenderPassword string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     dbURL,
		Env:             env,
		LocalStoreDir:   getEnv("LOCAL_STORE_DIR", "./uploads"),
		PublicBaseURL:   strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		TesseractBin:    getEnv("TESSERACT_BIN", "tesseract"),
		PdftoppmBin:     getEnv("PDFTOPPM_BIN", "pdftoppm"),
		TesseractLang:   getEnv("TESSERACT_LANG", "eng"),
		OCRDpi:          getEnvInt("OCR_DPI", 300),
		VerifyDocuments: getEnvBool("VERIFY_DOCUMENTS", true),
		MatchThreshold:  getEnvFloat("MATCH_THRESHOLD", 0.7),
		LLMBaseURL:      getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMModel:        getEnv("LLM_MODEL", "meta-llama/llama-3.1-8b-instruct:free"),
		LLMAPIKey:       getEnv("OPENROUTER_API_KEY", ""),
		SMTPHost:        getEnv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SenderEmail:     getEnv("SENDER_EMAIL", ""),
		SenderPassword:  getEnv("SENDER_PASSWORD", ""),
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
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return val
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil || val < 0 || val > 1 {
		log.Printf("invalid %s=%q, using %g", key, raw, def)
		return def
	}
	return val
}

func getEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
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
