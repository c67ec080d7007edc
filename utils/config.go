package utils

import (
	"errors"
	"os"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port           string
	MongoURI       string
	DatabaseName   string
	JWTSecret      string
	SendGridAPIKey string
	EmailSender    string
}

const (
	defaultPort         = "5000"
	defaultDatabaseName = "bikerz_heaven"
)

// LoadConfig reads configuration from environment variables, applying
// defaults where a variable is unset. MONGO_URI and ACCESS_TOKEN_SECRET
// are required.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", defaultPort),
		MongoURI:       os.Getenv("MONGO_URI"),
		DatabaseName:   getEnv("DB_NAME", defaultDatabaseName),
		JWTSecret:      os.Getenv("ACCESS_TOKEN_SECRET"),
		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		EmailSender:    os.Getenv("EMAIL_SENDER"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
