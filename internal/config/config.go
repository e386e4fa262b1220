package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr    string
	CORSOrigins []string

	// RedisAddr empty means the in-memory result cache is used.
	RedisAddr string
	CacheTTL  int // seconds; 0 disables expiry

	LogLevel string

	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   int // seconds

	// AmortizationCapFactor bounds the mortgage simulation at factor×term
	// months. Guard against degenerate inputs; keep the default unless you
	// know why you are changing it.
	AmortizationCapFactor int
}

func FromEnv() Config {
	return Config{
		HTTPAddr:              envOr("HTTP_ADDR", ":8080"),
		CORSOrigins:           csvOr("CORS_ORIGINS", "http://localhost:3000"),
		RedisAddr:             os.Getenv("REDIS_ADDR"),
		CacheTTL:              envInt("CACHE_TTL_SECONDS", 300),
		LogLevel:              envOr("LOG_LEVEL", "info"),
		RateLimitEnabled:      envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests:     envInt("RATE_LIMIT_REQUESTS", 60),
		RateLimitWindow:       envInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		AmortizationCapFactor: envInt("AMORTIZATION_CAP_FACTOR", 2),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := os.Getenv(k)
	if v == "" {
		v = def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
