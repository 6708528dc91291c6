package infra

import (
	"testing"
	"time"
)

func TestLoadConfigRequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("GROQ_API_KEY", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected missing JWT_SECRET to fail")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected missing GROQ_API_KEY to fail")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("DATA_DIR", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.GroqModel != "llama-3.3-70b-versatile" {
		t.Fatalf("GroqModel = %q", cfg.GroqModel)
	}
	if cfg.UsersFile != "data/users.json" || cfg.ProjectsFile != "data/projects.json" {
		t.Fatalf("files = %q %q", cfg.UsersFile, cfg.ProjectsFile)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("SessionTTL = %v", cfg.SessionTTL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("GROQ_MODEL", "llama-3.1-8b-instant")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.GroqModel != "llama-3.1-8b-instant" {
		t.Fatalf("GroqModel = %q", cfg.GroqModel)
	}
	if cfg.RateLimitPerMin != 5 {
		t.Fatalf("RateLimitPerMin = %d", cfg.RateLimitPerMin)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}
