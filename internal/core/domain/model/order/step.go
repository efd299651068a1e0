package order

import (
	"errors"
	"strings"

	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"
)

var (
	// ErrStepIsNotConstructed is returned when validating a zero-value Step.
	ErrStepIsNotConstructed = errors.New("Step must be created via NewCompletedStep or NewPendingStep")
	// ErrStepLabelIsRequired is returned for a blank label.
	ErrStepLabelIsRequired = errs.NewValueIsRequiredError("step label")
	// ErrStepTimestampIsRequired is returned when completing a step without a timestamp.
	ErrStepTimestampIsRequired = errs.NewValueIsRequiredError("step timestamp")
)

// Step is one milestone of an order's fulfillment. A completed step carries a
// human-readable timestamp; a pending step never does.
type Step struct { //nolint:recvcheck //using for validation
	label       string
	timestamp   string
	isCompleted bool
	guard       guard.ConstructorGuard
}

// NewCompletedStep creates a reached milestone.
func NewCompletedStep(label, timestamp string) (Step, error) {
	label = strings.TrimSpace(label)
	timestamp = strings.TrimSpace(timestamp)

	var errList []error
	if label == "" {
		errList = append(errList, ErrStepLabelIsRequired)
	}
	if timestamp == "" {
		errList = append(errList, ErrStepTimestampIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return Step{}, err
	}

	return Step{
		label:       label,
		timestamp:   timestamp,
		isCompleted: true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewPendingStep creates a milestone that has not been reached yet.
func NewPendingStep(label string) (Step, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Step{}, ErrStepLabelIsRequired
	}
	return Step{label: label, guard: guard.NewConstructorGuard()}, nil
}

func mustCompletedStep(label, timestamp string) Step {
	s, err := NewCompletedStep(label, timestamp)
	if err != nil {
		panic(err)
	}
	return s
}

func mustPendingStep(label string) Step {
	s, err := NewPendingStep(label)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate returns ErrStepIsNotConstructed for a zero value.
func (s Step) Validate() error {
	return s.guard.Validate(ErrStepIsNotConstructed)
}

// Label returns the stage name, e.g. "Shipped".
func (s Step) Label() string {
	return s.label
}

// Timestamp returns the time the step was reached and whether it has one.
func (s Step) Timestamp() (string, bool) {
	return s.timestamp, s.isCompleted
}

// IsCompleted reports whether the milestone has been reached.
func (s Step) IsCompleted() bool {
	return s.isCompleted
}

// complete returns a completed copy of a pending step.
func (s Step) complete(timestamp string) (Step, error) {
	return NewCompletedStep(s.label, timestamp)
}
