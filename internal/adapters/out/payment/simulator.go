// Package payment simulates the checkout payment gateway. No money moves.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"medassist/internal/core/ports"
	"medassist/internal/pkg/errs"
)

// DefaultDelay is how long a simulated payment takes.
const DefaultDelay = 2 * time.Second

// ErrPaymentMethodIsInvalid is returned for methods outside upi, card, netbanking and cod.
var ErrPaymentMethodIsInvalid = errs.NewValueIsInvalidError("method")

// Simulator implements ports.PaymentSimulator. Every valid request succeeds
// after the configured delay unless the context ends first.
type Simulator struct {
	delay  time.Duration
	seq    atomic.Uint64
	now    func() time.Time
	logger *slog.Logger
}

// NewSimulator creates a simulator. A non-positive delay completes immediately.
func NewSimulator(delay time.Duration, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{
		delay:  delay,
		now:    time.Now,
		logger: logger.With("component", "payment_simulator"),
	}
}

// Pay waits for the delay and returns a receipt.
func (s *Simulator) Pay(ctx context.Context, req ports.PaymentRequest) (ports.PaymentReceipt, error) {
	if err := errors.Join(req.Amount.Validate(), validateMethod(req.Method)); err != nil {
		return ports.PaymentReceipt{}, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ports.PaymentReceipt{}, fmt.Errorf("%w: %w", ports.ErrExternalServiceFailure, ctx.Err())
		case <-timer.C:
		}
	}

	receipt := ports.PaymentReceipt{
		Reference: fmt.Sprintf("PAY-%d-%06d", s.now().Unix(), s.seq.Add(1)),
		Amount:    req.Amount,
		Method:    req.Method,
		PaidAt:    s.now(),
	}
	s.logger.InfoContext(ctx, "payment simulated",
		"reference", receipt.Reference,
		"amount", req.Amount.String(),
		"method", string(req.Method),
	)
	return receipt, nil
}

func validateMethod(method ports.PaymentMethod) error {
	if !method.IsValid() {
		return ErrPaymentMethodIsInvalid
	}
	return nil
}
