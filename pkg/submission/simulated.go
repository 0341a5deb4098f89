package submission

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/onboarding/pkg/locale"
)

// DefaultDelay is how long the simulated backend takes to answer.
const DefaultDelay = 2 * time.Second

// Simulated stands in for a real account-opening backend. It always accepts
// after a fixed delay and fabricates display-only branch and account numbers.
type Simulated struct {
	bank  locale.BankRules
	delay time.Duration
	now   func() time.Time

	mu   sync.Mutex
	rand *rand.Rand
}

// SimulatedOption configures a Simulated submitter.
type SimulatedOption func(*Simulated)

// WithDelay sets the response delay. Negative values are treated as zero.
func WithDelay(d time.Duration) SimulatedOption {
	return func(s *Simulated) {
		s.delay = max(d, 0)
	}
}

// WithRand sets the source of fabricated numbers, for reproducible receipts.
func WithRand(r *rand.Rand) SimulatedOption {
	return func(s *Simulated) {
		if r != nil {
			s.rand = r
		}
	}
}

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) SimulatedOption {
	return func(s *Simulated) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSimulated creates a submitter issuing numbers shaped by bank.
func NewSimulated(bank locale.BankRules, opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		bank:  bank,
		delay: DefaultDelay,
		rand:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit waits for the configured delay, or until ctx is done, then issues a receipt.
func (s *Simulated) Submit(ctx context.Context, p Payload) (Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, context.Cause(ctx)
		case <-timer.C:
		}
	} else if err := context.Cause(ctx); err != nil {
		return Receipt{}, err
	}

	s.mu.Lock()
	branch := s.bank.BranchPrefix + s.digits(s.bank.BranchDigits-len(s.bank.BranchPrefix))
	account := s.digits(s.bank.AccountDigits)
	s.mu.Unlock()

	return Receipt{
		Reference:     uuid.New(),
		AccountType:   p.AccountType,
		BranchLabel:   s.bank.BranchLabel,
		BranchNumber:  branch,
		AccountNumber: account,
		SubmittedAt:   s.now(),
	}, nil
}

// digits returns n random digits without a leading zero. Caller holds mu.
func (s *Simulated) digits(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(n)
	b.WriteByte(byte('1' + s.rand.IntN(9)))
	for range n - 1 {
		b.WriteByte(byte('0' + s.rand.IntN(10)))
	}
	return b.String()
}
