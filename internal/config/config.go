package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		URL     string `yaml:"url" env:"QUIZOGRAM_SERVER_URL"`
		Timeout string `yaml:"timeout" env:"QUIZOGRAM_SERVER_TIMEOUT"`
	} `yaml:"server"`
	Auth struct {
		TokenPath string `yaml:"token_path" env:"QUIZOGRAM_TOKEN_PATH"`
	} `yaml:"auth"`
	Attempt struct {
		SettleDelay     string `yaml:"settle_delay" env:"QUIZOGRAM_SETTLE_DELAY"`
		FinalizeRetries int    `yaml:"finalize_retries" env:"QUIZOGRAM_FINALIZE_RETRIES"`
	} `yaml:"attempt"`
	Cache struct {
		RedisAddr     string `yaml:"redis_addr" env:"QUIZOGRAM_REDIS_ADDR"`
		RedisPassword string `yaml:"redis_password" env:"QUIZOGRAM_REDIS_PASSWORD"`
		RedisDB       int    `yaml:"redis_db" env:"QUIZOGRAM_REDIS_DB"`
		TTL           string `yaml:"ttl" env:"QUIZOGRAM_CACHE_TTL"`
	} `yaml:"cache"`
}

// Load reads YAML config from path, then overlays environment variables.
// A missing config file is not an error; everything has a usable default.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, err
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Duration parses a duration string or returns the fallback if empty or
// malformed.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
