package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestWizardAttrs(t *testing.T) {
	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value any
	}{
		{"step", logger.Step(3), "step", int64(3)},
		{"state", logger.State("review"), "state", "review"},
		{"account type", logger.AccountType("business"), "account_type", "business"},
		{"locale", logger.Locale("AU"), "locale", "AU"},
		{"field", logger.Field("abn"), "field", "abn"},
		{"fields", logger.Fields([]string{"abn", "email"}), "fields", []string{"abn", "email"}},
		{"session", logger.SessionID("s-1"), "session_id", "s-1"},
		{"reference", logger.Reference("r-1"), "reference", "r-1"},
		{"attempt", logger.Attempt(2), "attempt", int64(2)},
		{"duration", logger.Duration(time.Second), "duration", time.Second},
		{"component", logger.Component("wizard"), "component", "wizard"},
		{"event", logger.Event("continue"), "event", "continue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.Any())
		})
	}
}

func TestEmptyAttrs(t *testing.T) {
	assert.True(t, logger.Fields(nil).Equal(slog.Attr{}))
	assert.True(t, logger.SessionID(nil).Equal(slog.Attr{}))
	assert.True(t, logger.Reference(nil).Equal(slog.Attr{}))
}

func TestTransition(t *testing.T) {
	attr := logger.Transition("step_1", "step_2", "continue")
	require.Equal(t, "transition", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "step_1", g[0].Value.String())
	assert.Equal(t, "step_2", g[1].Value.String())
	assert.Equal(t, "continue", g[2].Value.String())
}
