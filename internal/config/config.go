// Package config provides Viper-based hierarchical configuration:
// defaults, then an optional YAML config file, then environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"fjacquet/finstatement/internal/logging"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Batch struct {
		Parallel       bool `mapstructure:"parallel" yaml:"parallel"`
		Workers        int  `mapstructure:"workers" yaml:"workers"`
		TimeoutSeconds int  `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"batch" yaml:"batch"`

	AI struct {
		Enabled        bool   `mapstructure:"enabled" yaml:"enabled"`
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize the API key
	} `mapstructure:"ai" yaml:"ai"`

	Categories struct {
		RulesFile string `mapstructure:"rules_file" yaml:"rules_file"`
	} `mapstructure:"categories" yaml:"categories"`
}

var loadEnvOnce sync.Once

// LoadEnv loads environment variables from a .env file if one exists in
// the current or parent directory. Missing files are fine.
func LoadEnv() {
	loadEnvOnce.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		_ = godotenv.Load(envFile)
	})
}

// InitializeConfig builds the configuration: defaults first, then an
// optional config file, then FINSTATEMENT_-prefixed environment
// variables. The Gemini API key is always read from GEMINI_API_KEY.
func InitializeConfig() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finstatement")
	v.AddConfigPath(".finstatement")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINSTATEMENT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("batch.parallel", true)
	v.SetDefault("batch.workers", 0) // 0 means one worker per CPU
	v.SetDefault("batch.timeout_seconds", 60)

	v.SetDefault("ai.enabled", false)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.timeout_seconds", 30)

	v.SetDefault("categories.rules_file", "categories.yaml")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Batch.Workers < 0 {
		return fmt.Errorf("batch.workers must not be negative, got: %d", config.Batch.Workers)
	}
	if config.Batch.TimeoutSeconds < 0 {
		return fmt.Errorf("batch.timeout_seconds must not be negative, got: %d", config.Batch.TimeoutSeconds)
	}

	if config.AI.Enabled {
		if config.AI.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY required when AI is enabled")
		}
		if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
			return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
		}
	}
	return nil
}

// ConfigureLogging builds the application logger from the configuration.
func ConfigureLogging(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
