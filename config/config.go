package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the pipeline needs from the environment.
// Load it once at startup and pass it into the orchestrator; packages never
// read the environment themselves.
type Config struct {
	Port string

	// Language model
	CohereAPIKey string
	CohereModel  string

	// Search volume. When VolumeAPIURL is empty the LLM estimator is used.
	VolumeAPIURL string
	VolumeAPIKey string

	// Optional Redis read-through cache for volume lookups
	RedisAddr string

	// Optional Kafka publishing of completed analyses
	KafkaBrokers []string
	KafkaTopic   string

	// Rewrite chunking threshold in characters
	RewriteChunkSize int

	// First-party terms filtered out of extracted keywords
	ExcludedTerms []string
}

// Load reads configuration from the environment, consulting .env if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             GetEnvOrDefault("PORT", "8080"),
		CohereAPIKey:     os.Getenv("COHERE_API_KEY"),
		CohereModel:      GetEnvOrDefault("COHERE_MODEL", "command-r-plus-08-2024"),
		VolumeAPIURL:     os.Getenv("VOLUME_API_URL"),
		VolumeAPIKey:     os.Getenv("VOLUME_API_KEY"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		KafkaTopic:       GetEnvOrDefault("KAFKA_TOPIC", "seo.analyses"),
		RewriteChunkSize: getEnvInt("REWRITE_CHUNK_SIZE", DefaultRewriteChunkSize),
		ExcludedTerms:    DefaultExcludedTerms,
	}

	if brokers := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if extra := os.Getenv("EXCLUDED_TERMS"); extra != "" {
		for _, t := range strings.Split(extra, ",") {
			if t = strings.TrimSpace(strings.ToLower(t)); t != "" {
				cfg.ExcludedTerms = append(cfg.ExcludedTerms, t)
			}
		}
	}

	return cfg
}

// GetEnvOrDefault returns the environment value for key, or fallback when unset.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
