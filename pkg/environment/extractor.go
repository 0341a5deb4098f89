package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor tags log records with the environment carried by the
// context, as "env". Contexts without one add nothing.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		return slog.String("env", string(env)), env != ""
	}
}
