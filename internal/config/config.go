package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	RecordStoreURL   string
	RecordStoreToken string

	AMQPURL string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	// DigestTo receives the follow-up digest. Empty disables the worker.
	DigestTo       string
	DigestInterval time.Duration

	StatsInterval time.Duration
	SessionTTL    time.Duration

	AllowedOrigins []string
}

// Load reads .env when present, then the environment. Every value has a
// local-dev default except the record store credentials.
func Load() *Config {
	godotenv.Load()

	return &Config{
		Port:             getenv("PORT", "8080"),
		RecordStoreURL:   getenv("RECORD_STORE_URL", "http://localhost:9000"),
		RecordStoreToken: os.Getenv("RECORD_STORE_TOKEN"),
		AMQPURL:          os.Getenv("AMQP_URL"),
		MailHost:         getenv("MAIL_HOST", "localhost"),
		MailPort:         getenvInt("MAIL_PORT", 587),
		MailUser:         os.Getenv("MAIL_USER"),
		MailPass:         os.Getenv("MAIL_PASS"),
		MailFrom:         getenv("MAIL_FROM", "console@botpilot.dev"),
		DigestTo:         os.Getenv("DIGEST_TO"),
		DigestInterval:   getenvDuration("DIGEST_INTERVAL", time.Hour),
		StatsInterval:    getenvDuration("STATS_INTERVAL", 30*time.Second),
		SessionTTL:       getenvDuration("SESSION_TTL", 30*time.Minute),
		AllowedOrigins:   []string{getenv("ALLOWED_ORIGIN", "http://localhost:5173"), "*"},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
