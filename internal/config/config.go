package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string
	Port     string
	DataDir  string
	LogLevel string
}

// Load reads configuration from the environment, after loading .env if one
// exists.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:   getenv("DB_PATH", "data/shopdesk.db"),
		Port:     getenv("PORT", "8080"),
		DataDir:  getenv("DATA_DIR", "data"),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
