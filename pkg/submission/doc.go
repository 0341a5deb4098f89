// Package submission hands a completed onboarding application to the
// account-opening backend.
//
// The wizard produces an Application holding display-formatted values.
// Service resolves its flow and locale, normalises the values into a Payload
// and delivers it to a Submitter:
//
//	svc := submission.NewService(
//	    submission.NewSimulated(loc.Bank, submission.WithDelay(2*time.Second)),
//	    submission.WithAttempts(3),
//	    submission.WithLogger(log),
//	)
//	receipt, err := svc.Submit(ctx, app)
//
// Submitters report three outcomes: success, a *RetryableError that the
// Service retries with exponential back-off, and ErrRejected which is
// returned immediately. Simulated is the only backend shipped; it always
// accepts and fabricates branch and account numbers for display.
package submission
