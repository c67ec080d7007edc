package utils

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected default port 5000, got %q", cfg.Port)
	}
	if cfg.DatabaseName != "bikerz_heaven" {
		t.Fatalf("expected default database, got %q", cfg.DatabaseName)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Fatalf("unexpected secret %q", cfg.JWTSecret)
	}
}

func TestLoadConfigRequiredVars(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without MONGO_URI")
	}

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ACCESS_TOKEN_SECRET", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without ACCESS_TOKEN_SECRET")
	}
}
