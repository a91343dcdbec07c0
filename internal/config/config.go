// Package config reads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"calc-engine/internal/calculator"
	"calc-engine/internal/expr"
)

// Config is the process configuration.
type Config struct {
	Addr            string
	ServiceName     string
	LogLevel        string
	HistoryCapacity int
	Strategy        expr.Strategy
	ShutdownTimeout time.Duration
	OTelEnabled     bool
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		Addr:            ":8080",
		ServiceName:     "calc-engine",
		LogLevel:        "info",
		HistoryCapacity: calculator.DefaultHistoryCapacity,
		Strategy:        expr.ShuntingYard,
		ShutdownTimeout: 5 * time.Second,
		OTelEnabled:     true,
	}
}

// LoadDotEnv loads environment variables from path (".env" when empty) if
// the file exists. Existing process environment variables are not
// overridden.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load %s: %w", path, err)
}

// Load builds a Config from the environment on top of Default.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup to read variables.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("CALC_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("OTEL_SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}
	if v, ok := lookup("CALC_LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	if v, ok := lookup("CALC_HISTORY_CAPACITY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("CALC_HISTORY_CAPACITY: want a positive integer, got %q", v)
		}
		cfg.HistoryCapacity = n
	}

	if v, ok := lookup("CALC_EVALUATOR"); ok {
		s, err := expr.ParseStrategy(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_EVALUATOR: %w", err)
		}
		cfg.Strategy = s
	}

	if v, ok := lookup("CALC_SHUTDOWN_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("CALC_SHUTDOWN_TIMEOUT: want a positive duration, got %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	if v, ok := lookup("CALC_OTEL_ENABLED"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("CALC_OTEL_ENABLED: %w", err)
		}
		cfg.OTelEnabled = b
	}

	return cfg, nil
}
