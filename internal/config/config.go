// Package config loads and validates process configuration.
//
// Values come from viper (config file, GOELUNCH_* environment variables and
// bound flags) but are handed to the rest of the program as a plain struct;
// no other package reads viper at call time.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the settings the menu pipeline consumes.
type Config struct {
	// Lang is the two-letter language code of the speiseplan document.
	Lang string `mapstructure:"lang" validate:"required,alpha,len=2"`

	// DefaultCanteen is used when the user names no canteen. May be empty,
	// in which case a canteen argument is required.
	DefaultCanteen string `mapstructure:"default_canteen"`

	// MaxItems caps the number of rendered menu lines.
	MaxItems int `mapstructure:"max_items" validate:"gte=0"`

	// RequestTimeout bounds the document fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
}

// SetDefaults registers the default values on a viper instance.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("lang", "de")
	v.SetDefault("default_canteen", "")
	v.SetDefault("max_items", 30)
	v.SetDefault("request_timeout", 30*time.Second)
}

// Load unmarshals and validates the configuration.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
