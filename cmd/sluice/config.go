package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config controls the line processing pipeline. Values come from SLUICE_*
// environment variables, optionally loaded from a .env file in the working
// directory.
type Config struct {
	// Workers sets the size of the worker pool the filter and transform
	// stages run on. With more than one worker the output order is not
	// guaranteed to match the input order.
	Workers int `mapstructure:"workers" validate:"gte=1,lte=256"`

	// Pattern keeps only lines containing the given substring.
	// An empty pattern keeps everything.
	Pattern string `mapstructure:"pattern"`

	// Transform is applied to every kept line.
	Transform string `mapstructure:"transform" validate:"oneof=none upper lower trim"`

	// BatchSize sets how many lines are written between output flushes.
	BatchSize int `mapstructure:"batch_size" validate:"gte=1"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
}

func loadConfig() (Config, error) {
	// A missing .env file is fine, plain environment variables are enough.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("sluice")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("workers", 4)
	v.SetDefault("pattern", "")
	v.SetDefault("transform", "none")
	v.SetDefault("batch_size", 64)
	v.SetDefault("log_level", "info")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
