package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Environment string           `env:"ENV" envDefault:"development"`
	Port        string           `env:"PORT" envDefault:"8000" validate:"required,numeric"`
	LogLevel    string           `env:"LOG_LEVEL" envDefault:"info"`
	OpenAI      OpenAIConfig     `envPrefix:"OPENAI_"`
	Processing  ProcessingConfig
}

type OpenAIConfig struct {
	APIKey  string `env:"API_KEY" validate:"required"`
	Model   string `env:"MODEL" envDefault:"gpt-3.5-turbo" validate:"required"`
	BaseURL string `env:"BASE_URL" validate:"omitempty,url"`
}

type ProcessingConfig struct {
	MaxFileSizeMB int    `env:"MAX_FILE_SIZE_MB" envDefault:"10" validate:"min=1,max=1024"`
	Extractor     string `env:"PDF_EXTRACTOR" envDefault:"pdf" validate:"oneof=pdf mupdf"`
}

// MaxFileSizeBytes is the upload ceiling in bytes.
func (p ProcessingConfig) MaxFileSizeBytes() int64 {
	return int64(p.MaxFileSizeMB) * 1024 * 1024
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks the whole configuration, OpenAI credentials included.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ValidateProcessing checks only what local extraction needs.
func (c *Config) ValidateProcessing() error {
	if err := validate.Struct(c.Processing); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
