package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
}

// Load reads configuration from the environment, picking up a local .env
// file when one exists. DatabaseURL and DatabaseName may legitimately be
// empty: the server then runs without a store.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),
		Port:         getEnv("PORT", "8000"),
	}
}

func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}
