// Package chat models the assistant conversation transcript.
package chat

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/pkg/errs"
)

var (
	// ErrMessageIsNotConstructed is returned when a Message was not created through a constructor.
	ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")
	// ErrTextIsRequired is returned for a blank message.
	ErrTextIsRequired = errs.NewValueIsRequiredError("text")
)

// Sender is who wrote a message.
type Sender string

const (
	// SenderUser marks messages typed by the patient.
	SenderUser Sender = "user"
	// SenderBot marks assistant replies and system confirmations.
	SenderBot Sender = "bot"
)

// Validate rejects senders other than SenderUser and SenderBot.
func (s Sender) Validate() error {
	switch s {
	case SenderUser, SenderBot:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("sender", fmt.Errorf("%q is not a chat sender", string(s)))
	}
}

// Message is one entry of the transcript.
type Message struct {
	id        kernel.UUID
	sender    Sender
	text      string
	createdAt time.Time

	isConstructed bool
}

// NewMessage creates a message with a fresh id.
func NewMessage(sender Sender, text string, createdAt time.Time) (*Message, error) {
	return RestoreMessage(kernel.NewUUID(), sender, text, createdAt)
}

// RestoreMessage rebuilds a message read from a store.
func RestoreMessage(id kernel.UUID, sender Sender, text string, createdAt time.Time) (*Message, error) {
	var errList []error
	if err := id.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := sender.Validate(); err != nil {
		errList = append(errList, err)
	}
	if strings.TrimSpace(text) == "" {
		errList = append(errList, ErrTextIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		sender:        sender,
		text:          text,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the message was built by a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message id.
func (m *Message) ID() kernel.UUID { return m.id }

// Sender returns the author.
func (m *Message) Sender() Sender { return m.sender }

// Text returns the message body.
func (m *Message) Text() string { return m.text }

// CreatedAt returns when the message was written.
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// IsFromUser reports whether the patient wrote the message.
func (m *Message) IsFromUser() bool { return m.sender == SenderUser }
