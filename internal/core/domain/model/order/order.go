package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// the Factory or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via Factory or RestoreOrder")

	// ErrOrderIsCompleted is returned when advancing an order whose last step is completed.
	ErrOrderIsCompleted = errors.New("order has reached its final step")

	// ErrStepsAreNotMonotonic is returned when a completed step follows a pending one.
	ErrStepsAreNotMonotonic = errs.NewValueIsInvalidErrorWithCause(
		"steps",
		errors.New("a completed step cannot follow a pending step"),
	)

	// ErrStepsAreRequired is returned when restoring an order without steps.
	ErrStepsAreRequired = errs.NewValueIsRequiredError("steps")
)

// Order is a medicine order or lab-test booking as the patient tracks it.
//
// Order follows these invariants:
//   - id is a numeric order number, unique within the store
//   - amount is a valid non-negative Money
//   - steps are non-empty and completion never resumes after a pending step
//   - status is always the label of the last completed step
//
// Orders are equal when their ids are equal.
type Order struct {
	id            ID
	kind          Kind
	title         string
	details       string
	itemNames     []string
	amount        kernel.Money
	createdAt     time.Time
	steps         []Step
	deliveryAgent *kernel.Contact
	invoiceURL    string
	reportURL     string

	isConstructed bool
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID            ID
	Kind          Kind
	Title         string
	Details       string
	ItemNames     []string
	Amount        kernel.Money
	CreatedAt     time.Time
	Steps         []Step
	DeliveryAgent *kernel.Contact
	InvoiceURL    string
	ReportURL     string
}

// RestoreOrder rebuilds an order read from a store. It enforces the same
// invariants as the Factory but accepts any progress along the steps.
func RestoreOrder(p RestoreParams) (*Order, error) {
	var errList []error
	if err := p.ID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := p.Kind.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := p.Amount.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := validateSteps(p.Steps); err != nil {
		errList = append(errList, err)
	}
	if p.DeliveryAgent != nil {
		if err := p.DeliveryAgent.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Order{
		id:            p.ID,
		kind:          p.Kind,
		title:         p.Title,
		details:       p.Details,
		itemNames:     slices.Clone(p.ItemNames),
		amount:        p.Amount,
		createdAt:     p.CreatedAt,
		steps:         slices.Clone(p.Steps),
		deliveryAgent: p.DeliveryAgent,
		invoiceURL:    p.InvoiceURL,
		reportURL:     p.ReportURL,
		isConstructed: true,
	}, nil
}

func validateSteps(steps []Step) error {
	if len(steps) == 0 {
		return ErrStepsAreRequired
	}

	pendingSeen := false
	for i, s := range steps {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		if !s.IsCompleted() {
			pendingSeen = true
			continue
		}
		if pendingSeen {
			return ErrStepsAreNotMonotonic
		}
	}
	return nil
}

// Validate ensures the order was built by the Factory or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order number.
func (o *Order) ID() ID {
	return o.id
}

// Kind returns the order type.
func (o *Order) Kind() Kind {
	return o.kind
}

// Title returns "Medicine Order" or the booked test name.
func (o *Order) Title() string {
	return o.title
}

// Details returns the short description shown under the title.
func (o *Order) Details() string {
	return o.details
}

// ItemNames returns the medicine names of a cart order; empty for bookings.
func (o *Order) ItemNames() []string {
	return slices.Clone(o.itemNames)
}

// Amount returns the amount paid.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// CreatedAt returns when the checkout completed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Steps returns a copy of the fulfillment steps.
func (o *Order) Steps() []Step {
	return slices.Clone(o.steps)
}

// DeliveryAgent returns the contact person, if one was assigned.
func (o *Order) DeliveryAgent() (kernel.Contact, bool) {
	if o.deliveryAgent == nil {
		return kernel.Contact{}, false
	}
	return *o.deliveryAgent, true
}

// InvoiceURL returns the invoice reference, empty when none exists.
func (o *Order) InvoiceURL() string {
	return o.invoiceURL
}

// ReportURL returns the lab report reference, empty until the report is ready.
func (o *Order) ReportURL() string {
	return o.reportURL
}

// HasInvoice reports whether the invoice download should be offered.
func (o *Order) HasInvoice() bool {
	return o.invoiceURL != ""
}

// HasReport reports whether the report preview should be offered.
func (o *Order) HasReport() bool {
	return o.reportURL != ""
}

// CompletedSteps returns how many steps have been reached.
func (o *Order) CompletedSteps() int {
	n := 0
	for _, s := range o.steps {
		if !s.IsCompleted() {
			break
		}
		n++
	}
	return n
}

// Status returns the label of the last completed step, or "" if none is completed.
func (o *Order) Status() string {
	n := o.CompletedSteps()
	if n == 0 {
		return ""
	}
	return o.steps[n-1].Label()
}

// IsTerminal reports whether every step has been reached.
func (o *Order) IsTerminal() bool {
	return o.CompletedSteps() == len(o.steps)
}

// AdvanceStep completes the next pending step with the given timestamp.
//
// A lab-test booking gets its report reference when it reaches "Report Ready".
// Returns ErrOrderIsCompleted when every step is already completed.
func (o *Order) AdvanceStep(timestamp string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	next := o.CompletedSteps()
	if next == len(o.steps) {
		return ErrOrderIsCompleted
	}

	completed, err := o.steps[next].complete(timestamp)
	if err != nil {
		return err
	}
	o.steps[next] = completed

	if o.kind == LabTest && completed.Label() == LabelReportReady && o.reportURL == "" {
		o.reportURL = reportReference(o.id)
	}
	return nil
}

func invoiceReference(id ID) string {
	return fmt.Sprintf("/invoices/%s.pdf", id)
}

func reportReference(id ID) string {
	return fmt.Sprintf("/reports/%s.pdf", id)
}
