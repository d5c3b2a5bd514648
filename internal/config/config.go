// Package config loads server configuration from file, environment,
// and defaults, in that order of priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Cards   CardsConfig   `mapstructure:"cards"`
	Suggest SuggestConfig `mapstructure:"suggest"`
}

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}

// Address returns the host:port the server listens on
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig holds the snapshot store connection settings
type RedisConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"required"`
}

// CardsConfig points at the static card catalog
type CardsConfig struct {
	DataPath string `mapstructure:"data_path" validate:"required"`
}

// SuggestConfig tunes the automated crew builders. A zero seed means
// each counter-crew run gets its own time-based seed; a fixed seed makes
// generation reproducible.
type SuggestConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// setDefaults applies defaults for anything the file and environment
// left unset
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("redis.endpoint", "localhost:6379")
	v.SetDefault("cards.data_path", "data/cards.json")
	v.SetDefault("suggest.seed", 0)
}

// Load reads configuration with priority: environment variables over
// config file over defaults. A missing config file is fine; a malformed
// one is not.
func Load(configPath string) (*Config, error) {
	// Pick up a .env file when present, mainly for local development
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/crew-api")
	}

	v.SetEnvPrefix("CREW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// validate checks the struct tags and renders failures readably
func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Namespace(), e.Tag(), e.Value(),
		))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}
