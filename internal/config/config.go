// Package config loads the application configuration from file and
// environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Data    DataConfig    `mapstructure:"data"`
	Remote  RemoteConfig  `mapstructure:"remote"`
	Reports ReportsConfig `mapstructure:"reports"`
	Seeds   SeedsConfig   `mapstructure:"seeds"`
}

type DataConfig struct {
	DatabaseFile string `mapstructure:"database_file" validate:"required"`
}

type RemoteConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=1"`
}

// Enabled reports whether a sync endpoint is configured. Without one the
// application runs fully local.
func (c RemoteConfig) Enabled() bool {
	return c.BaseURL != ""
}

type ReportsConfig struct {
	OutputDirectory string `mapstructure:"output_directory"`
}

type SeedsConfig struct {
	SyllabusDirectory string `mapstructure:"syllabus_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/revtrack")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("data.database_file", filepath.Join("data", "revtrack.db"))
	v.SetDefault("remote.timeout_seconds", 10)
	v.SetDefault("reports.output_directory", "reports")
	v.SetDefault("seeds.syllabus_directory", filepath.Join("assets", "syllabi"))

	// Bind sync credentials to environment variables only (not from config file)
	if err := v.BindEnv("remote.base_url", "REVTRACK_SYNC_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind REVTRACK_SYNC_URL environment variable: %w", err)
	}
	if err := v.BindEnv("remote.api_key", "REVTRACK_SYNC_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind REVTRACK_SYNC_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
