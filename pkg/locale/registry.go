package locale

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownLocale is returned by Lookup for codes without rules.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrInvalidCatalog is returned when locale rules fail to parse or validate.
	ErrInvalidCatalog = errors.New("invalid locale catalog")
)

// DefaultCode is the locale used when none is configured.
const DefaultCode = "AU"

//go:embed locales.yaml
var builtin []byte

type catalog struct {
	Locales []Locale `yaml:"locales"`
}

// Registry resolves locale codes to their rules.
type Registry struct {
	locales map[string]Locale
}

// Parse builds a Registry from YAML content.
func Parse(content []byte) (*Registry, error) {
	var c catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	if len(c.Locales) == 0 {
		return nil, fmt.Errorf("%w: no locales defined", ErrInvalidCatalog)
	}

	r := &Registry{locales: make(map[string]Locale, len(c.Locales))}
	for i := range c.Locales {
		l := c.Locales[i]
		if err := l.validate(); err != nil {
			return nil, fmt.Errorf("%w: locale[%d] %s: %v", ErrInvalidCatalog, i, l.Code, err)
		}
		key := strings.ToUpper(l.Code)
		if _, dup := r.locales[key]; dup {
			return nil, fmt.Errorf("%w: duplicate locale %s", ErrInvalidCatalog, l.Code)
		}
		r.locales[key] = l
	}
	return r, nil
}

// Lookup returns the rules for code, matched case-insensitively.
func (r *Registry) Lookup(code string) (Locale, error) {
	l, ok := r.locales[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	return l, nil
}

// Codes returns the supported locale codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.locales))
	for code := range r.locales {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry built from the embedded catalog.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Parse(builtin)
	})
	return defaultRegistry, defaultErr
}

// Lookup resolves code against the embedded catalog.
func Lookup(code string) (Locale, error) {
	r, err := Default()
	if err != nil {
		return Locale{}, err
	}
	return r.Lookup(code)
}

// MustLookup works like Lookup but panics on error.
func MustLookup(code string) Locale {
	l, err := Lookup(code)
	if err != nil {
		panic(fmt.Sprintf("failed to load locale %q: %v", code, err))
	}
	return l
}
