package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv    string
	Port      string
	JWTSecret string

	// Data layout: flat JSON files plus an asset directory under DataDir.
	DataDir      string
	UsersFile    string
	ProjectsFile string
	AssetsDir    string

	GeoIPDBPath    string
	AllowedOrigins []string

	GroqAPIKey  string
	GroqModel   string
	GroqBaseURL string

	HFAPIToken  string
	HFSDXLURL   string
	HFTimeout   time.Duration
	GroqTimeout time.Duration

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
	SessionTTL       time.Duration
	TokenTTL         time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	dataDir := getEnv("DATA_DIR", "data")
	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Port:      getEnv("PORT", "8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),

		DataDir:      dataDir,
		UsersFile:    getEnv("USERS_FILE", filepath.Join(dataDir, "users.json")),
		ProjectsFile: getEnv("PROJECTS_FILE", filepath.Join(dataDir, "projects.json")),
		AssetsDir:    getEnv("ASSETS_DIR", filepath.Join(dataDir, "assets")),

		GeoIPDBPath:    os.Getenv("GEOIP_DB_PATH"),
		AllowedOrigins: splitCSV(os.Getenv("ALLOWED_ORIGINS")),

		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		GroqModel:   getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),

		HFAPIToken:  os.Getenv("HF_API_TOKEN"),
		HFSDXLURL:   getEnv("HF_SDXL_URL", "https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-xl-base-1.0"),
		HFTimeout:   time.Second * time.Duration(getEnvInt("HF_TIMEOUT_SECONDS", 120)),
		GroqTimeout: time.Second * time.Duration(getEnvInt("GROQ_TIMEOUT_SECONDS", 60)),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 180)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		SessionTTL:       time.Minute * time.Duration(getEnvInt("SESSION_TTL_MINUTES", 120)),
		TokenTTL:         time.Hour * time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
