package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// ServerConfig configures the HTTP API. Values come from API_* environment variables.
type ServerConfig struct {
	Port        string
	Env         string
	CORSOrigins []string
	ResultTTL   time.Duration
	// ResultMaxEntries bounds the in-memory result cache.
	ResultMaxEntries int
}

// Production reports whether API_ENV=production.
func (s ServerConfig) Production() bool { return s.Env == "production" }

// Addr is the listen address.
func (s ServerConfig) Addr() string { return ":" + s.Port }

func (s *ServerConfig) SetDefaults() {
	if s.Port == "" {
		s.Port = "8080"
	}
	if len(s.CORSOrigins) == 0 {
		s.CORSOrigins = []string{"*"}
	}
	if s.ResultTTL == 0 {
		s.ResultTTL = time.Hour
	}
	if s.ResultMaxEntries == 0 {
		s.ResultMaxEntries = 10000
	}
}

func (s ServerConfig) Validate() error {
	if s.ResultTTL < 0 {
		return fmt.Errorf("API_RESULT_TTL must be positive, got %s", s.ResultTTL)
	}
	if s.ResultMaxEntries < 0 {
		return fmt.Errorf("API_RESULT_MAX_ENTRIES must be positive, got %d", s.ResultMaxEntries)
	}
	return nil
}

// LoadServer reads API_PORT, API_ENV, API_CORS_ORIGINS, API_RESULT_TTL and
// API_RESULT_MAX_ENTRIES.
func LoadServer() (ServerConfig, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("API_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "API_"))
	}), nil); err != nil {
		return ServerConfig{}, err
	}

	cfg := ServerConfig{
		Port:             k.String("port"),
		Env:              strings.ToLower(k.String("env")),
		ResultMaxEntries: k.Int("result_max_entries"),
	}
	for _, o := range strings.Split(k.String("cors_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	if raw := k.String("result_ttl"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("API_RESULT_TTL: %w", err)
		}
		cfg.ResultTTL = ttl
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}
