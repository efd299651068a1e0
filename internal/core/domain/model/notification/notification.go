// Package notification models the in-app notifications shown in the bell menu.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/pkg/errs"
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
	// ErrTitleIsRequired is returned for a blank title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrMessageIsRequired is returned for a blank message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
)

// Kind groups notifications by origin.
type Kind string

const (
	// KindOrder is raised by order placement and progress.
	KindOrder Kind = "order"
	// KindSystem is raised by the application itself.
	KindSystem Kind = "system"
)

// Validate rejects kinds other than KindOrder and KindSystem.
func (k Kind) Validate() error {
	switch k {
	case KindOrder, KindSystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a notification kind", string(k)))
	}
}

// Notification is a user-visible message. New notifications are unread.
type Notification struct {
	id        kernel.UUID
	kind      Kind
	title     string
	message   string
	createdAt time.Time
	read      bool

	isConstructed bool
}

// NewNotification creates an unread notification with a fresh id.
func NewNotification(kind Kind, title, message string, createdAt time.Time) (*Notification, error) {
	return RestoreNotification(kernel.NewUUID(), kind, title, message, createdAt, false)
}

// RestoreNotification rebuilds a notification read from a store.
func RestoreNotification(
	id kernel.UUID,
	kind Kind,
	title, message string,
	createdAt time.Time,
	read bool,
) (*Notification, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := kind.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(title) == "" {
		errList = append(errList, ErrTitleIsRequired)
	}
	if strings.TrimSpace(message) == "" {
		errList = append(errList, ErrMessageIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Notification{
		id:            id,
		kind:          kind,
		title:         title,
		message:       message,
		createdAt:     createdAt,
		read:          read,
		isConstructed: true,
	}, nil
}

// Validate ensures the notification was built by a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification id.
func (n *Notification) ID() kernel.UUID { return n.id }

// Kind returns the notification origin.
func (n *Notification) Kind() Kind { return n.kind }

// Title returns the headline.
func (n *Notification) Title() string { return n.title }

// Message returns the body text.
func (n *Notification) Message() string { return n.message }

// CreatedAt returns when the notification was raised.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// IsRead reports whether the user has opened the notification.
func (n *Notification) IsRead() bool { return n.read }

// MarkRead flags the notification as read. Marking twice is a no-op.
func (n *Notification) MarkRead() {
	n.read = true
}
