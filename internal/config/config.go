package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App AppConfig `mapstructure:"app" validate:"required"`
	LLM LLMConfig `mapstructure:"llm" validate:"required"`
	TTS TTSConfig `mapstructure:"tts"`
}

// AppConfig contains tool-wide settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the text-generation service.
type LLMConfig struct {
	// APIKey authenticates against the generation service. It is treated as
	// an opaque string and may also be supplied via a key file on the
	// command line.
	APIKey string `mapstructure:"api_key"`

	// ModelName selects the generation model.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// MaxRetries bounds retry attempts for transient generation failures.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// TTSConfig contains settings for the speech-synthesis collaborator used
// when building deck packages with audio.
type TTSConfig struct {
	// Endpoint is the synthesis HTTP endpoint.
	Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`

	// TimeoutSeconds bounds a single synthesis request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}
