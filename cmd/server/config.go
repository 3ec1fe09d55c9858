package main

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment; flags may override it.
type Config struct {
	Port         int           `env:"PERIOD_PORT" env-default:"8080" env-description:"HTTP server port"`
	CORSOrigins  []string      `env:"PERIOD_CORS_ORIGINS" env-default:"http://localhost:5173,http://localhost:8080" env-description:"Allowed CORS origins, comma separated"`
	Timezone     string        `env:"PERIOD_TZ" env-default:"UTC" env-description:"IANA zone for bare dates and now"`
	ReadTimeout  time.Duration `env:"PERIOD_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `env:"PERIOD_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout  time.Duration `env:"PERIOD_IDLE_TIMEOUT" env-default:"60s"`
}

// loadConfig reads Config from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration from environment: %w", err)
	}
	return cfg, nil
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid PERIOD_TZ %q: %w", c.Timezone, err)
	}
	return loc, nil
}
