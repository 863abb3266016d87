package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// UpstreamConfig describes the REST boundary the console talks to.
// Everything comes from env; there is no config file.
type UpstreamConfig struct {
	BaseURL        string
	AuthHeader     string
	RequestTimeout time.Duration
	// RatePerMinute caps outgoing requests; 0 disables the limiter.
	RatePerMinute int64
}

func init() {
	// Load env from .env (no-op when the file is absent).
	godotenv.Load()
}

func GetUpstreamConfig() UpstreamConfig {
	baseURL := strings.TrimSpace(os.Getenv("CONSOLE_API_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.console.local"
	}
	authHeader := strings.TrimSpace(os.Getenv("CONSOLE_API_AUTH_HEADER"))
	if authHeader == "" {
		authHeader = "Authorization"
	}
	timeout := 30 * time.Second
	if v := strings.TrimSpace(os.Getenv("CONSOLE_API_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}
	var ratePerMin int64
	if v := strings.TrimSpace(os.Getenv("CONSOLE_API_RATE_LIMIT_PER_MIN")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			ratePerMin = n
		}
	}
	return UpstreamConfig{
		BaseURL:        strings.TrimRight(baseURL, "/"),
		AuthHeader:     authHeader,
		RequestTimeout: timeout,
		RatePerMinute:  ratePerMin,
	}
}
