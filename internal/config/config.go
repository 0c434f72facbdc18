package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	MongoDB     string
	Port        string
	MetricsPort string
}

// LoadConfig reads configuration from the environment, loading a local
// .env file first when one exists. DatabaseURL may legitimately be empty:
// the service starts without a database and degrades to its diagnostic
// paths instead of exiting.
func LoadConfig() *Config {
	// Only load .env for local development; deployed environments
	// provide real environment variables.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			slog.Warn("failed to load .env file", slog.Any("err", err))
		} else {
			slog.Info(".env file loaded")
		}
	} else {
		slog.Info("using system environment variables")
	}

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		MongoDB:     getEnv("MONGO_DB", "petshop"),
		Port:        getEnv("PORT", "8000"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
