package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default values applied when neither the environment nor a config file
// provides a setting.
const (
	defaultLogLevel          = "info"
	defaultModelName         = "gemini-2.0-flash"
	defaultMaxRetries        = 3
	defaultRetryDelaySeconds = 2
	defaultTTSEndpoint       = "https://translate.google.com/translate_tts"
	defaultTTSTimeoutSeconds = 30
)

// Load reads configuration from environment variables and an optional
// lexideck.yaml in the working directory. Environment variables use the
// LEXIDECK_ prefix with underscores for nesting (for example
// LEXIDECK_LLM_API_KEY) and take precedence over config-file values.
// A .env file, if present, is loaded into the environment first.
//
// Returns a populated Config or an error if loading or validation fails.
func Load() (*Config, error) {
	// Best-effort: a missing .env file is the normal case.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("app.log_level", defaultLogLevel)
	// The empty default registers the key so that the LEXIDECK_LLM_API_KEY
	// environment variable is picked up by Unmarshal.
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.max_retries", defaultMaxRetries)
	v.SetDefault("llm.retry_delay_seconds", defaultRetryDelaySeconds)
	v.SetDefault("tts.endpoint", defaultTTSEndpoint)
	v.SetDefault("tts.timeout_seconds", defaultTTSTimeoutSeconds)

	v.SetConfigName("lexideck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("LEXIDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
