package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Default fetch concurrency. Eight outstanding archive requests keeps a
// month-long range fast without hammering the mesonet archive.
const defaultFetchConcurrency = 8

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Archive fetch configuration.
	ArchiveBaseURL   string
	FetchConcurrency int
	FetchTimeout     time.Duration // 0 disables the per-request timeout

	// Overlay header configuration.
	OverlayTitle   string
	OverlayRefresh int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	if shutdownTimeout <= 0 {
		return nil, errors.New("SHUTDOWN_TIMEOUT must be positive")
	}

	fetchTimeout, err := parseDuration("FETCH_TIMEOUT", "0s")
	if err != nil {
		return nil, err
	}
	if fetchTimeout < 0 {
		return nil, errors.New("FETCH_TIMEOUT must not be negative")
	}

	concurrency, err := parseInt("FETCH_CONCURRENCY", defaultFetchConcurrency)
	if err != nil {
		return nil, err
	}
	if concurrency < 1 || concurrency > 64 {
		return nil, errors.New("FETCH_CONCURRENCY must be between 1 and 64")
	}

	refresh, err := parseInt("OVERLAY_REFRESH", 9999)
	if err != nil {
		return nil, err
	}
	if refresh < 1 {
		return nil, errors.New("OVERLAY_REFRESH must be positive")
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8888"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ArchiveBaseURL:   envOrDefault("ARCHIVE_BASE_URL", "https://mesonet.agron.iastate.edu/archive/data"),
		FetchConcurrency: concurrency,
		FetchTimeout:     fetchTimeout,

		OverlayTitle:   envOrDefault("OVERLAY_TITLE", "Past TORs"),
		OverlayRefresh: refresh,
	}

	if _, err := url.ParseRequestURI(cfg.ArchiveBaseURL); err != nil {
		return nil, fmt.Errorf("invalid ARCHIVE_BASE_URL: %w", err)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
