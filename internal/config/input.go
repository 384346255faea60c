package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the form page server.
type ServerConfig struct {
	Addr         string          `yaml:"addr"`
	SiteTitle    string          `yaml:"site_title"`
	ReadTimeout  time.Duration   `yaml:"read_timeout"`
	WriteTimeout time.Duration   `yaml:"write_timeout"`
	IdleTimeout  time.Duration   `yaml:"idle_timeout"`
	RateLimit    RateLimitConfig `yaml:"rate_limit"`
	Disclaimers  Disclaimers     `yaml:"disclaimers"`
}

// Disclaimers replace the note shown under each calculator's result. Empty
// entries keep the built-in text.
type Disclaimers struct {
	Franchise string `yaml:"franchise"`
	Investor  string `yaml:"investor"`
}

// RateLimitConfig bounds submissions per client address.
type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

// DefaultServerConfig returns the settings used when no file is given.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:         ":8080",
		SiteTitle:    "EEI Returns Calculator",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		RateLimit: RateLimitConfig{
			Requests: 30,
			Window:   time.Minute,
		},
	}
}

// InputParser handles parsing of input and server configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadServerConfig loads server settings from a YAML file. Keys missing from
// the file keep their defaults.
func (ip *InputParser) LoadServerConfig(filename string) (*ServerConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := DefaultServerConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateServerConfig(cfg); err != nil {
		return nil, fmt.Errorf("server configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ValidateServerConfig validates the loaded server configuration
func (ip *InputParser) ValidateServerConfig(cfg *ServerConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if cfg.RateLimit.Requests < 0 {
		return fmt.Errorf("rate_limit.requests cannot be negative")
	}
	if cfg.RateLimit.Requests > 0 && cfg.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive when requests is set")
	}
	return nil
}

// LoadFieldsFromFile reads a YAML mapping of form field id to value, e.g.
//
//	vehicleCost: 1000000
//	loanRate: 10
//	years: 5
//
// Values are kept as text so they go through the same parsing as a form.
func (ip *InputParser) LoadFieldsFromFile(filename string) (FieldMap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	fields := make(FieldMap, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			fields[k] = ""
		case map[string]any, []any:
			return nil, fmt.Errorf("field %s: expected a scalar value", k)
		default:
			fields[k] = fmt.Sprint(val)
		}
	}
	return fields, nil
}
