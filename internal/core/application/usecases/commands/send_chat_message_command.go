package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"medassist/internal/pkg/errs"
	"medassist/internal/pkg/guard"
)

// MaxChatMessageLength bounds one patient message in characters.
const MaxChatMessageLength = 4000

var (
	ErrSendChatMessageCommandIsNotConstructed = errors.New(
		"SendChatMessageCommand must be created via NewSendChatMessageCommand constructor",
	)
	ErrChatTextIsRequired = errs.NewValueIsRequiredError("text")
)

// SendChatMessageCommand is a patient message to the assistant.
type SendChatMessageCommand struct { //nolint:recvcheck //using for validation
	text string

	guard guard.ConstructorGuard
}

// NewSendChatMessageCommand trims and validates text.
func NewSendChatMessageCommand(text string) (SendChatMessageCommand, error) {
	cmd := SendChatMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setText(text); err != nil {
		return SendChatMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendChatMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendChatMessageCommandIsNotConstructed)
}

// Text returns the message.
func (c SendChatMessageCommand) Text() string {
	return c.text
}

func (c *SendChatMessageCommand) setText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrChatTextIsRequired
	}
	if n := utf8.RuneCountInString(text); n > MaxChatMessageLength {
		return errs.NewValueIsOutOfRangeError("text", n, 1, MaxChatMessageLength)
	}

	c.text = text
	return nil
}
