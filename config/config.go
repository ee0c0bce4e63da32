package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store drivers accepted in STORE_DRIVER.
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Port     string
	LogLevel string
	// Job store selection
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	DBUrl         string
	SQLitePath    string
	// CORS
	AllowedOrigins []string
	// Link preview fetcher
	PreviewTimeout   time.Duration
	PreviewUserAgent string
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", StoreMongo)),
		MongoURI:      getEnv("MONGODB_URI", "mongodb://127.0.0.1:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "jobboard"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		SQLitePath:    getEnv("SQLITE_PATH", "jobboard.db"),

		AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:3000"}),

		PreviewTimeout:   time.Duration(getEnvInt("PREVIEW_TIMEOUT_SECONDS", 10)) * time.Second,
		PreviewUserAgent: getEnv("PREVIEW_USER_AGENT", "jobboard-preview/1.0"),
	}

	switch cfg.StoreDriver {
	case StoreMongo, StoreSQLite:
	case StorePostgres:
		if cfg.DBUrl == "" {
			log.Println("WARNING: STORE_DRIVER=postgres but DATABASE_URL is missing. Application may fail to connect.")
		}
	default:
		log.Printf("WARNING: unknown STORE_DRIVER %q, falling back to %s", cfg.StoreDriver, StoreMongo)
		cfg.StoreDriver = StoreMongo
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
