package kernel

import (
	"errors"
	"strings"

	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"
)

var (
	// ErrContactIsNotConstructed is returned when validating a zero-value Contact.
	ErrContactIsNotConstructed = errors.New("Contact must be created via NewContact")
	// ErrContactNameIsRequired is returned for a blank name.
	ErrContactNameIsRequired = errs.NewValueIsRequiredError("contact name")
	// ErrContactPhoneIsRequired is returned for a blank phone number.
	ErrContactPhoneIsRequired = errs.NewValueIsRequiredError("contact phone")
)

// Contact is the person a patient can call about an order: the delivery
// partner for medicines, the phlebotomist for lab tests.
type Contact struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewContact trims and validates both fields.
func NewContact(name, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	var errList []error
	if name == "" {
		errList = append(errList, ErrContactNameIsRequired)
	}
	if phone == "" {
		errList = append(errList, ErrContactPhoneIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return Contact{}, err
	}

	return Contact{name: name, phone: phone, guard: guard.NewConstructorGuard()}, nil
}

// Validate returns ErrContactIsNotConstructed for a zero value.
func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

// Name returns the contact's display name.
func (c Contact) Name() string {
	return c.name
}

// Phone returns the contact's phone number as entered.
func (c Contact) Phone() string {
	return c.phone
}
