package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Step records the 1-based wizard step under the key "step".
func Step(n int) slog.Attr {
	return slog.Int("step", n)
}

// State records a wizard state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Transition records a state change as a "transition" group.
func Transition(from, to, event string) slog.Attr {
	return Group("transition",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("event", event),
	)
}

// AccountType records the applicant's account type under "account_type".
func AccountType(t string) slog.Attr {
	return slog.String("account_type", t)
}

// Locale records the locale code under the key "locale".
func Locale(code string) slog.Attr {
	return slog.String("locale", code)
}

// Field records a form field key under the key "field". Never pass values:
// they may hold identity numbers.
func Field(key string) slog.Attr {
	return slog.String("field", key)
}

// Fields records several form field keys under the key "fields".
// If keys is empty, it returns an empty Attr.
func Fields(keys []string) slog.Attr {
	if len(keys) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", keys)
}

// SessionID records the wizard session identifier under the key "session_id".
// If id is nil, it returns an empty Attr.
func SessionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("session_id", id)
}

// Reference records a submission reference under the key "reference".
// If ref is nil, it returns an empty Attr.
func Reference(ref any) slog.Attr {
	if ref == nil {
		return slog.Attr{}
	}
	return slog.Any("reference", ref)
}

// Attempt records the 1-based submission attempt under the key "attempt".
func Attempt(n int) slog.Attr {
	return slog.Int("attempt", n)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
