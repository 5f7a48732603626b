package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Storage selects the task backend: "file", "firestore" or "memory".
	Storage      string
	TasksFile    string
	FirestoreDoc string
	// FirebaseCredentials is the service account key path for Firestore.
	FirebaseCredentials string

	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration

	JWTSecret         string
	JWTRefreshSecret  string
	OwnerPasswordHash string

	CaptchaProjectID   string
	CaptchaSiteKey     string
	CaptchaCredentials string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: No .env file found or failed to load")
	}

	cfg := &Config{
		Port:                getenv("PORT", "8080"),
		Storage:             getenv("STORAGE", "file"),
		TasksFile:           getenv("TASKS_FILE", "tasks.json"),
		FirestoreDoc:        getenv("FIRESTORE_DOC", "owner"),
		FirebaseCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_1"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getenv("GEMINI_MODEL", "gemini-pro"),
		AITimeout:           15 * time.Second,
		JWTSecret:           os.Getenv("JWT_SECRET_KEY"),
		JWTRefreshSecret:    os.Getenv("JWT_REFRESH_SECRET_KEY"),
		OwnerPasswordHash:   os.Getenv("OWNER_PASSWORD_HASH"),
		CaptchaProjectID:    os.Getenv("GOOGLE_CLOUD_PROJECT_ID"),
		CaptchaSiteKey:      os.Getenv("RECAPTCHA_SITE_KEY"),
		CaptchaCredentials:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_2"),
	}

	if v := os.Getenv("AI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AI_TIMEOUT %q: %w", v, err)
		}
		cfg.AITimeout = d
	}

	switch cfg.Storage {
	case "file", "firestore", "memory":
	default:
		return nil, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}

	if cfg.Storage == "firestore" && cfg.FirebaseCredentials == "" {
		return nil, fmt.Errorf("environment variable GOOGLE_APPLICATION_CREDENTIALS_1 is not set")
	}

	if cfg.JWTSecret != "" && cfg.JWTRefreshSecret == "" {
		cfg.JWTRefreshSecret = cfg.JWTSecret
	}

	return cfg, nil
}

// AuthEnabled reports whether the task routes sit behind the JWT middleware.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// CaptchaEnabled reports whether sign-in requires a reCAPTCHA token.
func (c *Config) CaptchaEnabled() bool {
	return c.CaptchaSiteKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
