package commands

import (
	"errors"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/pkg/guard"
)

var ErrAdvanceOrderStepCommandIsNotConstructed = errors.New(
	"AdvanceOrderStepCommand must be created via NewAdvanceOrderStepCommand constructor",
)

// AdvanceOrderStepCommand moves one order to its next fulfillment step.
type AdvanceOrderStepCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStepCommand creates the command for the order numbered orderID.
func NewAdvanceOrderStepCommand(orderID order.ID) (AdvanceOrderStepCommand, error) {
	cmd := AdvanceOrderStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AdvanceOrderStepCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStepCommandIsNotConstructed)
}

// OrderID returns the order number.
func (c AdvanceOrderStepCommand) OrderID() order.ID {
	return c.orderID
}

func (c *AdvanceOrderStepCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
