package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App            AppConfig
	Database       DatabaseConfig
	SMTP           SMTPConfig
	Keys           APIKeys
	Ai             AIConfig
	Classifier     ClassifierConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaEmbedModel  string
	LLMProvider       string // "gemini" or "ollama"
	LLMModel          string
	GenerationTimeout int // seconds, applied to every generation call
}

// ClassifierConfig carries everything the classification pipeline consumes:
// model locations, the scope-gate threshold and the keyword tables used by the
// domain classifier's non-model fallback. Keyword lists are tuning data, so
// they are env-overridable with the defaults below.
type ClassifierConfig struct {
	SimilarityThreshold float64
	InferenceBaseURL    string
	DomainModel         string
	PregnancyModel      string
	GeneralModel        string
	PregnancyKeywords   []string
	GeneralKeywords     []string
	FallbackConfidence  float64
	KnowledgeBasePath   string
}

type RecommendationConfig struct {
	TablePath string // optional JSON override for the default recommendation table
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "CarePal"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-2.0-flash-lite"),
			GenerationTimeout: getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 30),
		},
		Classifier: ClassifierConfig{
			SimilarityThreshold: getEnvAsFloat("SIMILARITY_THRESHOLD", 0.7),
			InferenceBaseURL:    getEnv("INFERENCE_BASE_URL", ""),
			DomainModel:         getEnv("DOMAIN_MODEL", ""),
			PregnancyModel:      getEnv("PREGNANCY_INTENT_MODEL", ""),
			GeneralModel:        getEnv("GENERAL_INTENT_MODEL", ""),
			PregnancyKeywords: getEnvAsList("PREGNANCY_KEYWORDS",
				"hamil,kehamilan,kandungan,anc,persalinan,melahirkan,trimester,kontraksi,janin,bayi"),
			GeneralKeywords: getEnvAsList("GENERAL_KEYWORDS",
				"dokter,lab,obat,resep,diagnosis,imunisasi,golongan darah,berobat,jadwal"),
			FallbackConfidence: getEnvAsFloat("KEYWORD_FALLBACK_CONFIDENCE", 0.5),
			KnowledgeBasePath:  getEnv("KNOWLEDGE_BASE_PATH", ""),
		},
		Recommendation: RecommendationConfig{
			TablePath: getEnv("RECOMMENDATION_TABLE_PATH", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key, fallback string) []string {
	raw := getEnv(key, fallback)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
