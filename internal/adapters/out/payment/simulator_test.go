package payment_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"medassist/internal/adapters/out/payment"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSimulator_Pay(t *testing.T) {
	amount, err := kernel.NewMoneyFromInt(150)
	require.NoError(t, err)

	t.Run("returns a receipt", func(t *testing.T) {
		sim := payment.NewSimulator(0, logger())

		first, err := sim.Pay(t.Context(), ports.PaymentRequest{Amount: amount, Method: ports.PaymentUPI})
		require.NoError(t, err)
		second, err := sim.Pay(t.Context(), ports.PaymentRequest{Amount: amount, Method: ports.PaymentCOD})
		require.NoError(t, err)

		assert.True(t, first.Amount.IsEqual(amount))
		assert.Equal(t, ports.PaymentUPI, first.Method)
		assert.NotEmpty(t, first.Reference)
		assert.NotEqual(t, first.Reference, second.Reference)
	})

	t.Run("waits for the delay", func(t *testing.T) {
		sim := payment.NewSimulator(30*time.Millisecond, logger())
		start := time.Now()

		_, err := sim.Pay(t.Context(), ports.PaymentRequest{Amount: amount, Method: ports.PaymentCard})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		sim := payment.NewSimulator(time.Hour, logger())
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		_, err := sim.Pay(ctx, ports.PaymentRequest{Amount: amount, Method: ports.PaymentNetBanking})

		require.ErrorIs(t, err, ports.ErrExternalServiceFailure)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("rejects invalid requests", func(t *testing.T) {
		sim := payment.NewSimulator(0, logger())

		_, err := sim.Pay(t.Context(), ports.PaymentRequest{Method: "bitcoin"})

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
		require.ErrorIs(t, err, payment.ErrPaymentMethodIsInvalid)
	})
}
