package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env / the process environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		// .env is optional, fall back to the real environment
		return os.Getenv(key)
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}
