package submission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/onboarding/pkg/field"
)

// Application is the completed form handed over for submission.
type Application struct {
	AccountType field.AccountType
	Locale      string
	Data        field.Values
}

// Payload is an Application with its values normalised for a backend:
// digits only identifiers, E.164 phones, ISO 8601 dates, decimal amounts.
type Payload struct {
	AccountType field.AccountType
	Locale      string
	Fields      map[string]any
}

// Receipt confirms an accepted application.
type Receipt struct {
	Reference     uuid.UUID
	AccountType   field.AccountType
	BranchLabel   string
	BranchNumber  string
	AccountNumber string
	SubmittedAt   time.Time
}

// Submitter delivers a normalised payload.
//
// Implementations report failures as *RetryableError for transient problems
// and wrap ErrRejected for final refusals.
type Submitter interface {
	Submit(ctx context.Context, p Payload) (Receipt, error)
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, p Payload) (Receipt, error)

func (f SubmitterFunc) Submit(ctx context.Context, p Payload) (Receipt, error) {
	return f(ctx, p)
}
