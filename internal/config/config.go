package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/ykvlv/coach-bot/internal/domain"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken      string        `envconfig:"BOT_TOKEN" required:"true"`
	OpenRouterKey string        `envconfig:"OPENROUTER_API_KEY" required:"true"`
	OpenRouterURL string        `envconfig:"OPENROUTER_URL" default:"https://openrouter.ai/api/v1/chat/completions"`
	AIModel       string        `envconfig:"AI_MODEL" default:"anthropic/claude-3-haiku"`
	AITimeout     time.Duration `envconfig:"AI_TIMEOUT" default:"60s"`
	DBPath        string        `envconfig:"DB_PATH" default:"./data/coach.db"`
	TZ            string        `envconfig:"TZ_NAME" default:"Europe/Moscow"`
	MorningAt     string        `envconfig:"MORNING_AT" default:"08:00"`
	EveningAt     string        `envconfig:"EVENING_AT" default:"20:00"`
	LogLevel      string        `envconfig:"LOG_LEVEL" default:"info"`   // debug|info|warn|error
	LogFormat     string        `envconfig:"LOG_FORMAT" default:"json"`  // json|console
	HTTPAddr      string        `envconfig:"HTTP_ADDR" default:":8080"`  // healthz + admin
	AdminToken    string        `envconfig:"ADMIN_TOKEN"`                // enables POST /jobs/{name}
}

// Load reads an optional .env file and then environment variables into Config.
func Load() (Config, error) {
	// A missing .env is normal in production.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values envconfig cannot.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.BotToken) == "" {
		errs = append(errs, errors.New("BOT_TOKEN is empty"))
	}
	if strings.TrimSpace(c.OpenRouterKey) == "" {
		errs = append(errs, errors.New("OPENROUTER_API_KEY is empty"))
	}
	if _, err := domain.ParseClock(c.MorningAt); err != nil {
		errs = append(errs, fmt.Errorf("MORNING_AT: %w", err))
	}
	if _, err := domain.ParseClock(c.EveningAt); err != nil {
		errs = append(errs, fmt.Errorf("EVENING_AT: %w", err))
	}
	if _, err := domain.LoadZone(c.TZ); err != nil {
		errs = append(errs, fmt.Errorf("TZ_NAME: %w", err))
	}
	if c.AITimeout < 0 {
		errs = append(errs, errors.New("AI_TIMEOUT must not be negative"))
	}
	return errors.Join(errs...)
}

// Location returns the configured zone. Call after Validate.
func (c Config) Location() *time.Location {
	loc, err := domain.LoadZone(c.TZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Schedule returns the parsed morning and evening clocks. Call after Validate.
func (c Config) Schedule() (morning, evening domain.Clock) {
	morning, _ = domain.ParseClock(c.MorningAt)
	evening, _ = domain.ParseClock(c.EveningAt)
	return morning, evening
}
