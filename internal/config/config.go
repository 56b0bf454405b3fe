// Package config parses entry point settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/robalobadob/guessnumber/internal/game"
)

// Config holds process-level configuration.
type Config struct {
	MinValue    int           `env:"GUESS_MIN" envDefault:"1"`
	MaxValue    int           `env:"GUESS_MAX" envDefault:"100"`
	MaxAttempts game.Attempts `env:"GUESS_MAX_ATTEMPTS" envDefault:"unlimited"`
	Daily       bool          `env:"GUESS_DAILY" envDefault:"false"`
	DailySalt   string        `env:"GUESS_DAILY_SALT" envDefault:"local_dev_salt"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig loads environment defaults and then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	if fs == nil {
		return Config{}, errors.New("flag parser is required")
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.MinValue, "min", cfg.MinValue, "Lowest number the secret can be")
	fs.IntVar(&cfg.MaxValue, "max", cfg.MaxValue, "Highest number the secret can be")
	fs.Var(&cfg.MaxAttempts, "attempts", "Attempt limit (a non-negative integer or \"unlimited\")")
	fs.BoolVar(&cfg.Daily, "daily", cfg.Daily, "Derive the secret from today's UTC date")
	fs.StringVar(&cfg.DailySalt, "salt", cfg.DailySalt, "Salt for the daily secret")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Game returns the session configuration.
func (c Config) Game() game.Config {
	return game.Config{
		MinValue:    c.MinValue,
		MaxValue:    c.MaxValue,
		MaxAttempts: c.MaxAttempts,
	}
}
