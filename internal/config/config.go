package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

const defaultPort = "3000"

type Config struct {
	AwsRegion          string        `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKeyId     string        `env:"AWS_ACCESS_KEY_ID"`
	AwsSecretAccessKey string        `env:"AWS_SECRET_ACCESS_KEY"`
	AwsProfile         string        `env:"AWS_PROFILE"`
	Port               string        `env:"PORT" envDefault:"3000"`
	StaticDir          string        `env:"STATIC_DIR" envDefault:"public"`
	LogMode            string        `env:"LOG_MODE" envDefault:"dev"`
	ForecastTimeout    time.Duration `env:"FORECAST_TIMEOUT" envDefault:"0s"`
}

// LoadDotEnv loads variables from the given files into the process environment
// without overriding values that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	return nil
}

// ParseEnvVariables reads Config from the environment. An empty PORT falls
// back to the default like an unset one.
func ParseEnvVariables() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = defaultPort
	}

	return cfg, nil
}

// Redacted reports which secrets are present without exposing their values
func (c *Config) Redacted() map[string]string {
	return map[string]string{
		"AWS_REGION":            c.AwsRegion,
		"AWS_ACCESS_KEY_ID":     loadedOrMissing(c.AwsAccessKeyId),
		"AWS_SECRET_ACCESS_KEY": loadedOrMissing(c.AwsSecretAccessKey),
	}
}

func loadedOrMissing(value string) string {
	if value == "" {
		return "MISSING"
	}
	return "LOADED"
}
