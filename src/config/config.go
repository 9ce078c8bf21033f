// Blueprint for new Go projects
// Author: Christi Mahu – https://christimahu.dev
// Part of the dev repo: https://github.com/christimahu/dev/
// This file is part of a minimal idiomatic Go blueprint for creating new applications.
//
// config.go - Settings for the responder: where the response files live, how
// to log, and how to seed the random default picks.

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/christimahu/dev/blueprints/responder/src/chatbot"
)

// Config is the application configuration.
type Config struct {
	BotName       string        `mapstructure:"bot_name"`
	ResponsesFile string        `mapstructure:"responses_file"`
	DefaultsFile  string        `mapstructure:"defaults_file"`
	Seed          int64         `mapstructure:"seed"` // 0 picks a time-based seed
	Logging       LoggingConfig `mapstructure:"logging"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // empty logs to stderr only
}

// Load reads the YAML file at path, if one is given, on top of whatever is
// already bound into v (flags, defaults). A nil v uses a fresh viper.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.BotName == "" {
		cfg.BotName = "GoBot"
	}
	if cfg.ResponsesFile == "" {
		cfg.ResponsesFile = chatbot.DefaultKeywordFile
	}
	if cfg.DefaultsFile == "" {
		cfg.DefaultsFile = chatbot.DefaultDefaultsFile
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", cfg.Logging.Level)
	}
	return nil
}
