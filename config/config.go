package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/epeers/rsiv/internal/renderer"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port             string
	LogLevel         string
	LogFile          string
	Currency         string
	ReportLang       string
	MaxHoldings      int
	ResultTTL        time.Duration
	BatchConcurrency int
}

// Load reads configuration from environment variables.
// A .env file in the working directory, if any, is loaded first without
// overriding variables already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:       getenv("PORT", "8080"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		LogFile:    os.Getenv("LOG_FILE"),
		Currency:   getenv("CURRENCY", renderer.DefaultCurrency),
		ReportLang: getenv("REPORT_LANG", renderer.LangVietnamese),
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	if !renderer.ValidCurrency(cfg.Currency) {
		return nil, fmt.Errorf("unknown CURRENCY %q", cfg.Currency)
	}
	if !renderer.ValidLang(cfg.ReportLang) {
		return nil, fmt.Errorf("REPORT_LANG must be 'vi' or 'en', got %q", cfg.ReportLang)
	}

	var err error
	if cfg.MaxHoldings, err = positiveInt("MAX_HOLDINGS", 50); err != nil {
		return nil, err
	}
	if cfg.BatchConcurrency, err = positiveInt("BATCH_CONCURRENCY", 4); err != nil {
		return nil, err
	}

	ttl := getenv("RESULT_TTL", "30m")
	cfg.ResultTTL, err = time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid RESULT_TTL %q: %w", ttl, err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}
