package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Port            string
	GinMode         string
	DatabaseURL     string
	UploadDir       string
	MaxUploadBytes  int64
	AllowedOrigins  []string
	RedisAddr       string
	RedisPassword   string
	ContactLimit    int
	ApplyLimit      int
	ContactWindow   time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	NotifyEmail     string
	SweepSchedule   string
	SweepGrace      time.Duration
	SeedDemoData    bool
	ShutdownTimeout time.Duration
	Logger          *log.Logger
}

// Load reads the optional .env file and the environment and returns a populated Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := Config{
		Port:            envOrDefault("PORT", "8080"),
		GinMode:         strings.TrimSpace(os.Getenv("GIN_MODE")),
		DatabaseURL:     databaseURL(),
		UploadDir:       envOrDefault("UPLOAD_DIR", "./uploads"),
		MaxUploadBytes:  int64(intOrDefault("MAX_UPLOAD_BYTES", 10<<20)),
		AllowedOrigins:  parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		RedisAddr:       strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		ContactLimit:    intOrDefault("CONTACT_RATE_LIMIT", 5),
		ApplyLimit:      intOrDefault("APPLY_RATE_LIMIT", 10),
		ContactWindow:   durationOrDefault("CONTACT_RATE_WINDOW", time.Hour),
		SMTPHost:        strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPPort:        intOrDefault("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		NotifyEmail:     strings.TrimSpace(os.Getenv("NOTIFY_EMAIL")),
		SweepSchedule:   envOrDefault("UPLOAD_SWEEP_SCHEDULE", "30 3 * * *"),
		SweepGrace:      durationOrDefault("UPLOAD_SWEEP_GRACE", 24*time.Hour),
		SeedDemoData:    strings.EqualFold(strings.TrimSpace(os.Getenv("SEED_DEMO_DATA")), "true"),
		ShutdownTimeout: durationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		Logger:          log.New(os.Stdout, "[jobboard] ", log.LstdFlags|log.Lshortfile),
	}

	cfg.Logger.Printf("loaded config: port=%s uploadDir=%q redis=%t smtp=%t", cfg.Port, cfg.UploadDir, cfg.RedisAddr != "", cfg.MailEnabled())
	return cfg
}

// MailEnabled reports whether outbound notifications can be sent.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.NotifyEmail != ""
}

// databaseURL prefers DATABASE_URL and falls back to the discrete DB_* variables.
func databaseURL() string {
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		return v
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		envOrDefault("DB_HOST", "localhost"),
		envOrDefault("DB_USER", "postgres"),
		envOrDefault("DB_PASSWORD", "password"),
		envOrDefault("DB_NAME", "jobboard"),
		envOrDefault("DB_PORT", "5432"),
		envOrDefault("DB_SSLMODE", "disable"),
	)
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intOrDefault(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
