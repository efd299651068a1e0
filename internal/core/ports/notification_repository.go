package ports

import (
	"context"

	"medassist/internal/core/domain/model/chat"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/notification"
)

// NotificationRepository stores the bell-menu notifications.
type NotificationRepository interface {
	// Add prepends a notification.
	Add(ctx context.Context, n *notification.Notification) error

	// Update persists the read flag of a stored notification.
	Update(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// List returns notifications newest first.
	List(ctx context.Context) ([]*notification.Notification, error)
}

// ChatTranscript is the append-only assistant conversation.
type ChatTranscript interface {
	// Append adds a message at the end of the transcript.
	Append(ctx context.Context, m *chat.Message) error

	// List returns the transcript oldest first.
	List(ctx context.Context) ([]*chat.Message, error)
}
