package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram struct {
		Token string `yaml:"token"`
	} `yaml:"telegram"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Catalog struct {
		ID string `yaml:"id"`
	} `yaml:"catalog"`
	Results struct {
		Bands []Band `yaml:"bands"`
	} `yaml:"results"`
}

// Band mirrors one result band; an empty list falls back to the built-in
// table. Validation against the catalog happens at bootstrap.
type Band struct {
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
	Text  string `yaml:"text"`
	Image string `yaml:"image"`
}

// Load reads YAML config from path. The Telegram token may also come from
// the BOT_TOKEN environment variable, which takes precedence.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if token := os.Getenv("BOT_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty or
// malformed.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
