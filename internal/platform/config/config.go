package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures server configuration. main loads .env first (godotenv), so
// every field can come from the environment or that file.
type Config struct {
	Port           string
	LogLevel       string
	Store          string // "sqlite" | "memory"
	DBPath         string
	JWTSecret      string
	JWTTTL         time.Duration
	CookieName     string
	SecureCookies  bool
	ClientOrigin   string
	RequestTimeout time.Duration
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string { return ":" + c.Port }

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Port:           getEnv("PORT", "5175"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Store:          getEnv("STORE", "sqlite"),
		DBPath:         getEnv("DB_PATH", "./data/poker.db"),
		JWTSecret:      getEnv("JWT_SECRET", "dev_secret_change_me"),
		JWTTTL:         time.Duration(getInt("JWT_EXPIRES_DAYS", 14)) * 24 * time.Hour,
		CookieName:     getEnv("COOKIE_NAME", "poker_token"),
		SecureCookies:  getEnv("SECURE_COOKIES", "false") == "true",
		ClientOrigin:   getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return n
	}
	return def
}

func getDuration(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(k)); err == nil {
		return d
	}
	return def
}
