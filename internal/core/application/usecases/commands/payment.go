package commands

import (
	"context"
	"errors"
	"fmt"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/ports"
)

// ErrPaymentFailed is returned when the payment step of a checkout fails.
// No order is stored in that case.
var ErrPaymentFailed = errors.New("payment failed")

func pay(
	ctx context.Context,
	payments ports.PaymentSimulator,
	amount kernel.Money,
	method ports.PaymentMethod,
) (ports.PaymentReceipt, error) {
	receipt, err := payments.Pay(ctx, ports.PaymentRequest{Amount: amount, Method: method})
	if err != nil {
		return ports.PaymentReceipt{}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}
	return receipt, nil
}
