package environment

import (
	"context"
	"strings"
)

// Environment represents application environment.
type Environment string

const (
	// Development for local runs: text logs at debug level.
	Development Environment = "development"
	// Production for real applicants: JSON logs at info level.
	Production Environment = "production"
	// Staging mirrors production settings.
	Staging Environment = "staging"
)

// Parse maps a configured name, including the short dev/stage/prod spellings,
// to an Environment. Unknown names fall back to Development.
func Parse(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// IsDevelopment checks if the environment from context is development
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}
