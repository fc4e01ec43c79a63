// Package config loads searcher and experiment settings from an optional
// YAML file with environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Searcher settings.
	Simulations int     `mapstructure:"simulations"`
	MaxDepth    int     `mapstructure:"max_depth"`
	CPuct       float64 `mapstructure:"c_puct"`
	Temperature float64 `mapstructure:"temperature"`

	// EvaluatorURL points at a remote model server. Empty selects the
	// built-in uniform evaluator.
	EvaluatorURL     string        `mapstructure:"evaluator_url"`
	EvaluatorTimeout time.Duration `mapstructure:"evaluator_timeout"`

	// Experiment settings.
	Games      int    `mapstructure:"games"`
	Goroutines int    `mapstructure:"goroutines"`
	OutputDir  string `mapstructure:"output_dir"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads settings from path (optional; pass "" for defaults only) and
// from MINICHESS_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("simulations", 100)
	v.SetDefault("max_depth", 100)
	v.SetDefault("c_puct", 1.0)
	v.SetDefault("temperature", 1.0)
	v.SetDefault("evaluator_url", "")
	v.SetDefault("evaluator_timeout", 10*time.Second)
	v.SetDefault("games", 20)
	v.SetDefault("goroutines", 4)
	v.SetDefault("output_dir", "experiments-out")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("MINICHESS")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MaxDepth <= 0 {
		return errors.New("max_depth must be positive")
	}
	if c.CPuct <= 0 {
		return errors.New("c_puct must be positive")
	}
	if c.Temperature < 0 {
		return errors.New("temperature must be non-negative")
	}
	if c.Goroutines <= 0 {
		return errors.New("goroutines must be positive")
	}
	return nil
}
