package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables or config files.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV" validate:"required,oneof=development test production"`
	Port            string        `mapstructure:"PORT" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"gt=0"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required"`

	// BcryptSaltRounds is the bcrypt work factor used when hashing passwords.
	BcryptSaltRounds int `mapstructure:"BCRYPT_SALT_ROUNDS" validate:"gte=4,lte=31"`

	// RabbitMQURL is optional; domain events are not published when empty.
	RabbitMQURL string `mapstructure:"RABBITMQ_URL" validate:"omitempty,url"`

	// StrictStatusCodes maps failures to 404/409/422/500 instead of a blanket 400.
	StrictStatusCodes bool `mapstructure:"STRICT_STATUS_CODES"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var keys = []string{
	"APP_ENV",
	"PORT",
	"SHUTDOWN_TIMEOUT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"DATABASE_URL",
	"BCRYPT_SALT_ROUNDS",
	"RABBITMQ_URL",
	"STRICT_STATUS_CODES",
}

// Load reads .env (if present), an optional config.yaml and the environment,
// applies defaults and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DATABASE_URL", "sqlite://userorders.db")
	v.SetDefault("BCRYPT_SALT_ROUNDS", 10)
	v.SetDefault("STRICT_STATUS_CODES", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}
