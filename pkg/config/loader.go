package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed copy per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}

	defaultEnvLoaded sync.Once
)

// LoadEnv reads the given .env files into the process environment. Variables
// already set in the environment win over file values. Without arguments the
// .env file of the working directory is read.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v according to its `env` tags.
// Each configuration type is parsed once; later calls return the cached copy.
// A .env file in the working directory is read on first use if present.
//
//	type Settings struct {
//		Locale string        `env:"ONBOARDING_LOCALE" envDefault:"AU"`
//		Delay  time.Duration `env:"SUBMIT_DELAY" envDefault:"2s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	once, exists := globalCache.onces[typeName]
	if !exists {
		once = new(sync.Once)
		globalCache.onces[typeName] = once
	}
	globalCache.mu.Unlock()

	var err error
	once.Do(func() {
		var parsed T
		if parseErr := env.Parse(&parsed); parseErr != nil {
			err = errors.Join(ErrParsingConfig, parseErr)
			// Allow a retry once the environment is fixed.
			globalCache.mu.Lock()
			delete(globalCache.onces, typeName)
			globalCache.mu.Unlock()
			return
		}

		globalCache.mu.Lock()
		globalCache.values[typeName] = parsed
		globalCache.mu.Unlock()
	})
	if err != nil {
		return err
	}

	if cached, ok := globalCache.get(typeName); ok {
		*v = cached.(T)
		return nil
	}
	return ErrConfigNotLoaded
}

// Reload drops the cached copy of T and parses the environment again.
func Reload[T any](v *T) error {
	typeName := getTypeName[T]()
	globalCache.mu.Lock()
	delete(globalCache.values, typeName)
	delete(globalCache.onces, typeName)
	globalCache.mu.Unlock()
	return Load(v)
}

func (c *configCache) get(typeName string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[typeName]
	return v, ok
}

func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
