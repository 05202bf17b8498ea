package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App   AppConfig
	Quote QuoteConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Quote.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"QUOTER_APP_ENV" required:"true"`
	Port         string `envconfig:"QUOTER_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"QUOTER_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"QUOTER_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type QuoteConfig struct {
	TTL           time.Duration `envconfig:"QUOTER_QUOTE_TTL" default:"10m"`
	SweepInterval time.Duration `envconfig:"QUOTER_SWEEP_INTERVAL" default:"1m"`
}

func (q QuoteConfig) validate() error {
	if q.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvQuoteTTL)
	}
	if q.SweepInterval <= 0 {
		return fmt.Errorf("%s must be positive", EnvSweepInterval)
	}
	return nil
}
