package commands

import (
	"errors"
	"strings"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrBookLabTestCommandIsNotConstructed = errors.New(
		"BookLabTestCommand must be created via NewBookLabTestCommand constructor",
	)
	ErrTestNameIsRequired      = errs.NewValueIsRequiredError("testName")
	ErrScheduledDateIsRequired = errs.NewValueIsRequiredError("scheduledDate")
)

// BookLabTestCommand represents a paid lab test booking.
//
// Example:
//
//	cmd, err := NewBookLabTestCommand("Thyroid Profile", "2024-05-01", decimal.NewFromInt(499), ports.PaymentCard)
type BookLabTestCommand struct { //nolint:recvcheck //using for validation
	testName      string
	scheduledDate string
	price         kernel.Money
	method        ports.PaymentMethod

	guard guard.ConstructorGuard
}

// NewBookLabTestCommand validates the booking details.
func NewBookLabTestCommand(
	testName, scheduledDate string,
	price decimal.Decimal,
	method ports.PaymentMethod,
) (BookLabTestCommand, error) {
	cmd := BookLabTestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTestName(testName),
		cmd.setScheduledDate(scheduledDate),
		cmd.setPrice(price),
		cmd.setMethod(method),
	); err != nil {
		return BookLabTestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BookLabTestCommand) Validate() error {
	return c.guard.Validate(ErrBookLabTestCommandIsNotConstructed)
}

// TestName returns the booked test, e.g. "Thyroid Profile".
func (c BookLabTestCommand) TestName() string {
	return c.testName
}

// ScheduledDate returns the sample collection date as entered.
func (c BookLabTestCommand) ScheduledDate() string {
	return c.scheduledDate
}

// Price returns the test price.
func (c BookLabTestCommand) Price() kernel.Money {
	return c.price
}

// PaymentMethod returns how the patient pays.
func (c BookLabTestCommand) PaymentMethod() ports.PaymentMethod {
	return c.method
}

func (c *BookLabTestCommand) setTestName(testName string) error {
	testName = strings.TrimSpace(testName)
	if testName == "" {
		return ErrTestNameIsRequired
	}

	c.testName = testName
	return nil
}

func (c *BookLabTestCommand) setScheduledDate(date string) error {
	date = strings.TrimSpace(date)
	if date == "" {
		return ErrScheduledDateIsRequired
	}

	c.scheduledDate = date
	return nil
}

func (c *BookLabTestCommand) setPrice(price decimal.Decimal) error {
	money, err := kernel.NewMoney(price.Round(kernel.PaisePlaces))
	if err != nil {
		return err
	}

	c.price = money
	return nil
}

func (c *BookLabTestCommand) setMethod(method ports.PaymentMethod) error {
	if !method.IsValid() {
		return ErrPaymentMethodIsInvalid
	}

	c.method = method
	return nil
}
