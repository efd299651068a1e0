package commands

import (
	"errors"
	"fmt"
	"strings"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlaceMedicineOrderCommandIsNotConstructed = errors.New(
		"PlaceMedicineOrderCommand must be created via NewPlaceMedicineOrderCommand constructor",
	)
	ErrCartIsEmpty             = errs.NewValueIsRequiredError("items")
	ErrPaymentMethodIsInvalid  = errs.NewValueIsInvalidError("paymentMethod")
	ErrQuantityMustBePositive  = errors.New("quantity must be greater than 0")
	ErrCartLineNameIsRequired  = errors.New("cart line name is required")
	ErrCartLinePriceIsNegative = errors.New("cart line price must not be negative")
)

// CartLine is one medicine in the pharmacy cart. Price is rounded to paise.
type CartLine struct {
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// PlaceMedicineOrderCommand represents a paid checkout of the pharmacy cart.
//
// Example:
//
//	cmd, err := NewPlaceMedicineOrderCommand([]CartLine{
//	    {Name: "Paracetamol", Price: decimal.NewFromInt(30), Quantity: 1},
//	    {Name: "Vitamin C", Price: decimal.NewFromInt(120), Quantity: 1},
//	}, ports.PaymentUPI)
//	if err != nil {
//	    return fmt.Errorf("invalid cart: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd) // o.Amount() is ₹150
type PlaceMedicineOrderCommand struct { //nolint:recvcheck //using for validation
	itemNames []string
	total     kernel.Money
	method    ports.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceMedicineOrderCommand validates the cart and computes its total.
func NewPlaceMedicineOrderCommand(lines []CartLine, method ports.PaymentMethod) (PlaceMedicineOrderCommand, error) {
	cmd := PlaceMedicineOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLines(lines),
		cmd.setMethod(method),
	); err != nil {
		return PlaceMedicineOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceMedicineOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceMedicineOrderCommandIsNotConstructed)
}

// ItemNames returns the medicine names in cart order.
func (c PlaceMedicineOrderCommand) ItemNames() []string {
	names := make([]string, len(c.itemNames))
	copy(names, c.itemNames)
	return names
}

// Total returns the sum of price times quantity over the cart.
func (c PlaceMedicineOrderCommand) Total() kernel.Money {
	return c.total
}

// PaymentMethod returns how the patient pays.
func (c PlaceMedicineOrderCommand) PaymentMethod() ports.PaymentMethod {
	return c.method
}

func (c *PlaceMedicineOrderCommand) setLines(lines []CartLine) error {
	if len(lines) == 0 {
		return ErrCartIsEmpty
	}

	total := kernel.ZeroMoney()
	names := make([]string, 0, len(lines))
	for i, line := range lines {
		name := strings.TrimSpace(line.Name)
		switch {
		case name == "":
			return fmt.Errorf("line %d: %w", i, ErrCartLineNameIsRequired)
		case line.Quantity <= 0:
			return fmt.Errorf("line %d: %w", i, ErrQuantityMustBePositive)
		case line.Price.IsNegative():
			return fmt.Errorf("line %d: %w", i, ErrCartLinePriceIsNegative)
		}

		price, err := kernel.NewMoney(line.Price.Round(kernel.PaisePlaces))
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		subtotal, err := price.Mul(line.Quantity)
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		total = total.Add(subtotal)
		names = append(names, name)
	}

	c.itemNames = names
	c.total = total
	return nil
}

func (c *PlaceMedicineOrderCommand) setMethod(method ports.PaymentMethod) error {
	if !method.IsValid() {
		return ErrPaymentMethodIsInvalid
	}

	c.method = method
	return nil
}
