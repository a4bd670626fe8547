package types

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigFromEnv returns DefaultConfig with any SCRAPER_* and HTTP_ONLY overrides applied
func ConfigFromEnv() *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = strings.TrimRight(envOr("SCRAPER_BASE_URL", cfg.BaseURL), "/")
	cfg.State = envOr("SCRAPER_STATE", cfg.State)
	cfg.MaxListPages = envIntOr("SCRAPER_MAX_LIST_PAGES", cfg.MaxListPages)
	cfg.Timeout = envDurationOr("SCRAPER_TIMEOUT", cfg.Timeout)
	cfg.Headless = envBoolOr("SCRAPER_HEADLESS", cfg.Headless)
	cfg.UserAgent = envOr("SCRAPER_USER_AGENT", cfg.UserAgent)
	cfg.UseHeadlessBrowser = !envBoolOr("HTTP_ONLY", !cfg.UseHeadlessBrowser)
	return cfg
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
