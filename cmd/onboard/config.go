package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/onboarding/pkg/config"
	"github.com/dmitrymomot/onboarding/pkg/environment"
	"github.com/dmitrymomot/onboarding/pkg/logger"
)

// Config is the runtime configuration of the onboarding binary.
type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"development"`
	LogLevel       string        `env:"LOG_LEVEL"`
	LogFile        string        `env:"LOG_FILE"`
	Locale         string        `env:"ONBOARDING_LOCALE" envDefault:"AU"`
	SubmitDelay    time.Duration `env:"SUBMIT_DELAY" envDefault:"2s"`
	SubmitAttempts uint          `env:"SUBMIT_ATTEMPTS" envDefault:"3"`
	RetryDelay     time.Duration `env:"SUBMIT_RETRY_DELAY" envDefault:"500ms"`
}

var errInvalidConfig = errors.New("invalid configuration")

type sessionIDKey struct{}

// loadConfig reads envFiles into the environment, then parses it. The parse
// is redone on every call so the files always take effect.
func loadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return Config{}, err
		}
	}
	var cfg Config
	if err := config.Reload(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.SubmitAttempts == 0 {
		return Config{}, fmt.Errorf("%w: SUBMIT_ATTEMPTS must be at least 1", errInvalidConfig)
	}
	if cfg.SubmitDelay < 0 || cfg.RetryDelay < 0 {
		return Config{}, fmt.Errorf("%w: delays must not be negative", errInvalidConfig)
	}
	return cfg, nil
}

// Environment returns the parsed APP_ENV.
func (c Config) Environment() environment.Environment {
	return environment.Parse(c.AppEnv)
}

// LoggerOptions translates the logging settings. LOG_LEVEL overrides the
// level preset of the environment. Records are tagged with the environment
// and session id found in the context, see sessionContext.
func (c Config) LoggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Environment(), serviceName),
		logger.WithContextExtractors(environment.LoggerExtractor()),
		logger.WithContextValue("session_id", sessionIDKey{}),
	}
	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInvalidConfig, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	return opts, nil
}

func newLogger(c Config, out io.Writer) (*slog.Logger, error) {
	opts, err := c.LoggerOptions()
	if err != nil {
		return nil, err
	}
	return logger.New(append(opts, logger.WithOutput(out))...), nil
}

// sessionContext carries the environment and a fresh session id for one
// onboarding run.
func sessionContext(ctx context.Context, c Config) context.Context {
	ctx = environment.WithContext(ctx, c.Environment())
	return context.WithValue(ctx, sessionIDKey{}, uuid.NewString())
}
