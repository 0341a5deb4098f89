// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment;
//     variables that are already set keep their values.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so repeated calls are cheap.
//   - Reload drops the cached value of one type and parses again, e.g. after
//     LoadEnv brought in more variables.
//
// # Usage
//
//	type Settings struct {
//	    AppEnv   string        `env:"APP_ENV" envDefault:"development"`
//	    Locale   string        `env:"ONBOARDING_LOCALE" envDefault:"AU"`
//	    Delay    time.Duration `env:"SUBMIT_DELAY" envDefault:"2s"`
//	    Attempts uint          `env:"SUBMIT_ATTEMPTS" envDefault:"3"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer. A failed parse is
// not cached, so Load may be retried once the environment is fixed.
package config
