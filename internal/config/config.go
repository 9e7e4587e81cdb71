package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Alwanly/vendor-portal-diagnostics/pkg/validator"
)

type ServerConfig struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":3000" validate:"required"`
	AppName         string        `env:"APP_NAME" envDefault:"Vendor Portal Diagnostics" validate:"required"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"production" validate:"oneof=json production console development"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	EnableSwagger   bool          `env:"ENABLE_SWAGGER" envDefault:"true"`
}

type SmokeTestConfig struct {
	BaseURL  string        `env:"SMOKE_BASE_URL" envDefault:"http://localhost:3000" validate:"required,url"`
	VendorID string        `env:"SMOKE_VENDOR_ID" envDefault:"VND1" validate:"required"`
	Timeout  time.Duration `env:"SMOKE_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// LoadServerConfig reads server config from .env and the environment, applying defaults
func LoadServerConfig() (*ServerConfig, error) {
	return loadServerConfig(env.Options{})
}

// LoadSmokeTestConfig reads smoke test config from .env and the environment, applying defaults
func LoadSmokeTestConfig() (*SmokeTestConfig, error) {
	return loadSmokeTestConfig(env.Options{})
}

// opts.Environment replaces the process environment when set.
func loadServerConfig(opts env.Options) (*ServerConfig, error) {
	cfg := new(ServerConfig)
	if err := load(cfg, opts); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadSmokeTestConfig(opts env.Options) (*SmokeTestConfig, error) {
	cfg := new(SmokeTestConfig)
	if err := load(cfg, opts); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate re-checks a config after flags have been applied on top of it.
func (c *SmokeTestConfig) Validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid smoke test configuration: %s", validator.Summary(err))
	}
	return nil
}

func load(cfg interface{}, opts env.Options) error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := validator.ValidateStruct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %s", validator.Summary(err))
	}
	return nil
}

// loadDotEnv loads ./.env when present. Variables already set in the process win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}
