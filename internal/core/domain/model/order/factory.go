package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// maxDetailsLength is how many characters of the joined item names are kept
// before the medicine order details are cut with an ellipsis.
const maxDetailsLength = 30

var (
	// ErrInvalidOrderInput wraps every rejection of checkout parameters.
	ErrInvalidOrderInput = errors.New("invalid order input")

	// ErrItemNamesAreRequired is returned for an empty cart.
	ErrItemNamesAreRequired = errs.NewValueIsRequiredError("itemNames")
	// ErrItemNameIsBlank is returned when a cart entry has no name.
	ErrItemNameIsBlank = errs.NewValueIsInvalidErrorWithCause("itemNames", errors.New("item name must not be blank"))
	// ErrTestNameIsRequired is returned for a booking without a test name.
	ErrTestNameIsRequired = errs.NewValueIsRequiredError("testName")
	// ErrScheduledDateIsRequired is returned for a booking without a date.
	ErrScheduledDateIsRequired = errs.NewValueIsRequiredError("scheduledDate")
)

// Factory builds orders at checkout completion. It assigns the id, the step
// template and the canned contact person, and never stores or announces the
// order: persistence and notification belong to the caller.
//
// Example:
//
//	factory := order.NewFactory(order.NewRandomIDGenerator())
//	o, err := factory.NewMedicineOrder([]string{"Paracetamol", "Vitamin C"}, decimal.NewFromInt(150))
//	if errors.Is(err, order.ErrInvalidOrderInput) {
//	    // empty cart or negative amount
//	}
type Factory struct {
	ids IDGenerator
	now func() time.Time
}

// FactoryOption customizes a Factory.
type FactoryOption func(*Factory)

// WithClock replaces time.Now as the source of CreatedAt.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) {
		f.now = now
	}
}

// NewFactory creates a Factory drawing ids from ids.
func NewFactory(ids IDGenerator, opts ...FactoryOption) *Factory {
	f := &Factory{
		ids: ids,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewMedicineOrder creates the order for a paid pharmacy cart.
//
// itemNames must be non-empty with no blank entries and total must not be
// negative. The details line is the names joined by ", ", cut to 30
// characters plus "..." when longer.
func (f *Factory) NewMedicineOrder(itemNames []string, total decimal.Decimal) (*Order, error) {
	var errList []error
	if len(itemNames) == 0 {
		errList = append(errList, ErrItemNamesAreRequired)
	}
	names := make([]string, 0, len(itemNames))
	for _, name := range itemNames {
		name = strings.TrimSpace(name)
		if name == "" {
			errList = append(errList, ErrItemNameIsBlank)
			break
		}
		names = append(names, name)
	}
	amount, err := kernel.NewMoney(total)
	if err != nil {
		errList = append(errList, err)
	}
	if err = errors.Join(errList...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrderInput, err)
	}

	id := f.ids.Next(Medicine)
	return f.build(Medicine, id, getKindProfiles()[Medicine].title, medicineDetails(names), names, amount, invoiceReference(id))
}

// NewLabTestBooking creates the booking for a paid lab test scheduled on scheduledDate.
func (f *Factory) NewLabTestBooking(testName, scheduledDate string, price decimal.Decimal) (*Order, error) {
	testName = strings.TrimSpace(testName)
	scheduledDate = strings.TrimSpace(scheduledDate)

	var errList []error
	if testName == "" {
		errList = append(errList, ErrTestNameIsRequired)
	}
	if scheduledDate == "" {
		errList = append(errList, ErrScheduledDateIsRequired)
	}
	amount, err := kernel.NewMoney(price)
	if err != nil {
		errList = append(errList, err)
	}
	if err = errors.Join(errList...); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrderInput, err)
	}

	id := f.ids.Next(LabTest)
	return f.build(LabTest, id, testName, "Scheduled: "+scheduledDate, nil, amount, "")
}

func (f *Factory) build(
	kind Kind,
	id ID,
	title, details string,
	itemNames []string,
	amount kernel.Money,
	invoiceURL string,
) (*Order, error) {
	profile := getKindProfiles()[kind]
	agent, err := kernel.NewContact(profile.agentName, profile.agentPhone)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		kind:          kind,
		title:         title,
		details:       details,
		itemNames:     itemNames,
		amount:        amount,
		createdAt:     f.now(),
		steps:         kind.initialSteps(),
		deliveryAgent: &agent,
		invoiceURL:    invoiceURL,
		isConstructed: true,
	}, nil
}

func medicineDetails(names []string) string {
	joined := strings.Join(names, ", ")
	if utf8.RuneCountInString(joined) <= maxDetailsLength {
		return joined
	}
	return string([]rune(joined)[:maxDetailsLength]) + "..."
}
