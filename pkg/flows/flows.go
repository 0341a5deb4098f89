package flows

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/onboarding/pkg/field"
)

var (
	// ErrUnknownFlow is returned when no flow exists for a locale and account type.
	ErrUnknownFlow = errors.New("unknown flow")

	// ErrInvalidFlow is returned when a flow catalog fails to parse or validate.
	ErrInvalidFlow = errors.New("invalid flow catalog")
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

type document struct {
	Locale string       `yaml:"locale"`
	Flows  []field.Flow `yaml:"flows"`
}

// Registry holds the step schemas of every locale and account type.
type Registry struct {
	flows map[string]field.Flow
}

func flowKey(localeCode string, accountType field.AccountType) string {
	return strings.ToUpper(strings.TrimSpace(localeCode)) + "/" + string(accountType)
}

// NewRegistry creates an empty registry. Use Add or Parse to fill it.
func NewRegistry() *Registry {
	return &Registry{flows: make(map[string]field.Flow)}
}

// Parse decodes one catalog document and adds its flows to the registry.
func (r *Registry) Parse(content []byte) error {
	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return errors.Join(ErrInvalidFlow, err)
	}
	if strings.TrimSpace(doc.Locale) == "" {
		return fmt.Errorf("%w: missing locale", ErrInvalidFlow)
	}
	if len(doc.Flows) == 0 {
		return fmt.Errorf("%w: %s: no flows defined", ErrInvalidFlow, doc.Locale)
	}
	for _, f := range doc.Flows {
		f.Locale = strings.ToUpper(doc.Locale)
		if err := r.Add(f); err != nil {
			return err
		}
	}
	return nil
}

// Add validates f and registers it under its locale and account type.
func (r *Registry) Add(f field.Flow) error {
	if err := validate(f); err != nil {
		return fmt.Errorf("%w: %s/%s: %v", ErrInvalidFlow, f.Locale, f.AccountType, err)
	}
	key := flowKey(f.Locale, f.AccountType)
	if _, dup := r.flows[key]; dup {
		return fmt.Errorf("%w: duplicate flow %s", ErrInvalidFlow, key)
	}
	r.flows[key] = f
	return nil
}

// Lookup returns the flow for a locale code (case-insensitive) and account type.
func (r *Registry) Lookup(localeCode string, accountType field.AccountType) (field.Flow, error) {
	f, ok := r.flows[flowKey(localeCode, accountType)]
	if !ok {
		return field.Flow{}, fmt.Errorf("%w: %s/%s", ErrUnknownFlow, localeCode, accountType)
	}
	return f, nil
}

// Locales lists the locale codes with at least one flow, sorted.
func (r *Registry) Locales() []string {
	var codes []string
	for _, f := range r.flows {
		if !slices.Contains(codes, f.Locale) {
			codes = append(codes, f.Locale)
		}
	}
	slices.Sort(codes)
	return codes
}

func validate(f field.Flow) error {
	if _, err := field.ParseAccountType(string(f.AccountType)); err != nil {
		return err
	}
	if f.Len() == 0 {
		return errors.New("no steps")
	}

	seen := make(map[string]int)
	for i, s := range f.Steps {
		if s.ID != i+1 {
			return fmt.Errorf("step %d has id %d", i+1, s.ID)
		}
		if len(s.Fields) == 0 {
			return fmt.Errorf("step %d has no fields", s.ID)
		}
		for _, def := range s.Fields {
			if def.Key == "" {
				return fmt.Errorf("step %d: field without key", s.ID)
			}
			if prev, dup := seen[def.Key]; dup {
				return fmt.Errorf("field %q repeated in steps %d and %d", def.Key, prev, s.ID)
			}
			seen[def.Key] = s.ID
			if err := validateDefinition(def); err != nil {
				return fmt.Errorf("step %d: field %q: %w", s.ID, def.Key, err)
			}
		}
	}
	return nil
}

func validateDefinition(def field.Definition) error {
	if def.Type == "" {
		return errors.New("missing type")
	}
	if def.Type == field.TypeSelect && len(def.Options) == 0 {
		return errors.New("select without options")
	}
	switch v := def.Default.(type) {
	case nil:
	case bool:
		if !def.Type.IsBoolean() {
			return errors.New("boolean default on non-toggle field")
		}
	case string:
		if def.Type.IsBoolean() {
			return errors.New("string default on toggle field")
		}
		if def.Type == field.TypeSelect && !def.HasOption(v) {
			return fmt.Errorf("default %q is not an option", v)
		}
	default:
		return fmt.Errorf("unsupported default %T", v)
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
	defaultErr      error
)

// Default returns the registry of the embedded catalogs.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = load(catalogFS)
	})
	return defaultRegistry, defaultErr
}

func load(fsys fs.FS) (*Registry, error) {
	names, err := fs.Glob(fsys, "catalog/*.yaml")
	if err != nil {
		return nil, err
	}
	r := NewRegistry()
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := r.Parse(content); err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(name), err)
		}
	}
	return r, nil
}

// Load returns the built-in flow for a locale and account type.
func Load(localeCode string, accountType field.AccountType) (field.Flow, error) {
	r, err := Default()
	if err != nil {
		return field.Flow{}, err
	}
	return r.Lookup(localeCode, accountType)
}

// MustLoad is like Load but panics on error.
func MustLoad(localeCode string, accountType field.AccountType) field.Flow {
	f, err := Load(localeCode, accountType)
	if err != nil {
		panic(err)
	}
	return f
}
