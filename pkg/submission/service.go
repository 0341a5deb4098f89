package submission

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/dmitrymomot/onboarding/pkg/field"
	"github.com/dmitrymomot/onboarding/pkg/flows"
	"github.com/dmitrymomot/onboarding/pkg/locale"
	"github.com/dmitrymomot/onboarding/pkg/logger"
)

const (
	// DefaultAttempts is how many times a retryable failure is tried in total.
	DefaultAttempts uint = 3
	// DefaultRetryDelay is the base of the exponential back-off between attempts.
	DefaultRetryDelay = 500 * time.Millisecond
)

// FlowResolver finds the schema an application was filled against.
type FlowResolver func(localeCode string, accountType field.AccountType) (field.Flow, error)

// LocaleResolver finds the rules of a locale code.
type LocaleResolver func(code string) (locale.Locale, error)

// Service normalises applications and hands them to a Submitter, retrying
// transient failures.
type Service struct {
	backend  Submitter
	flows    FlowResolver
	locales  LocaleResolver
	attempts uint
	delay    time.Duration
	log      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithAttempts sets the total number of tries. Values below 1 mean 1.
func WithAttempts(n uint) ServiceOption {
	return func(s *Service) {
		s.attempts = max(n, 1)
	}
}

// WithRetryDelay sets the base back-off delay.
func WithRetryDelay(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.delay = max(d, 0)
	}
}

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithFlowResolver replaces the built-in flow catalog lookup.
func WithFlowResolver(r FlowResolver) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.flows = r
		}
	}
}

// WithLocaleResolver replaces the built-in locale lookup.
func WithLocaleResolver(r LocaleResolver) ServiceOption {
	return func(s *Service) {
		if r != nil {
			s.locales = r
		}
	}
}

// NewService creates a Service delivering to backend.
func NewService(backend Submitter, opts ...ServiceOption) *Service {
	s := &Service{
		backend:  backend,
		flows:    flows.Load,
		locales:  locale.Lookup,
		attempts: DefaultAttempts,
		delay:    DefaultRetryDelay,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("submission"))
	return s
}

// Submit normalises app and delivers it. Retryable failures are retried with
// exponential back-off until the attempts run out or ctx is done; any other
// failure is returned at once.
func (s *Service) Submit(ctx context.Context, app Application) (Receipt, error) {
	loc, err := s.locales(app.Locale)
	if err != nil {
		return Receipt{}, fmt.Errorf("resolve locale: %w", err)
	}
	flow, err := s.flows(app.Locale, app.AccountType)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: %w", ErrUnknownFlow, err)
	}
	payload := Normalize(flow, loc, app)

	log := s.log.With(logger.Locale(loc.Code), logger.AccountType(string(app.AccountType)))
	start := time.Now()
	attempt := 0

	receipt, err := retry.DoWithData(
		func() (Receipt, error) {
			attempt++
			r, err := s.backend.Submit(ctx, payload)
			if err == nil {
				return r, nil
			}
			if !IsRetryable(err) {
				return Receipt{}, retry.Unrecoverable(err)
			}
			return Receipt{}, err
		},
		retry.Attempts(s.attempts),
		retry.Delay(s.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.OnRetry(func(n uint, err error) {
			log.WarnContext(ctx, "submission attempt failed", logger.Attempt(int(n)+1), logger.Error(err))
		}),
	)
	if err != nil {
		log.ErrorContext(ctx, "submission failed",
			logger.Attempt(attempt),
			logger.Duration(time.Since(start)),
			logger.Error(err),
		)
		return Receipt{}, err
	}

	log.InfoContext(ctx, "application submitted",
		logger.Reference(receipt.Reference.String()),
		logger.Attempt(attempt),
		logger.Duration(time.Since(start)),
	)
	return receipt, nil
}
