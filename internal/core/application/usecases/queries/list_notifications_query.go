package queries

import (
	"context"
	"errors"
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/notification"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/guard"
)

var ErrListNotificationsQueryIsNotConstructed = errors.New(
	"ListNotificationsQuery must be created via NewListNotificationsQuery constructor",
)

// ListNotificationsQuery retrieves the bell-menu notifications.
type ListNotificationsQuery struct {
	guard guard.ConstructorGuard
}

// NewListNotificationsQuery creates the query.
func NewListNotificationsQuery() ListNotificationsQuery {
	return ListNotificationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListNotificationsQueryIsNotConstructed)
}

// NotificationView is one notification.
type NotificationView struct {
	ID        kernel.UUID
	Kind      notification.Kind
	Title     string
	Message   string
	CreatedAt time.Time
	Read      bool
}

// NotificationsView is the bell menu content with its badge count.
type NotificationsView struct {
	Items       []NotificationView
	UnreadCount int
}

// ListNotificationsQueryHandler reads the notification store.
type ListNotificationsQueryHandler struct {
	notifications ports.NotificationRepository
}

// NewListNotificationsQueryHandler creates the handler.
func NewListNotificationsQueryHandler(notifications ports.NotificationRepository) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{notifications: notifications}
}

// Handle returns notifications newest first.
func (h ListNotificationsQueryHandler) Handle(ctx context.Context, query ListNotificationsQuery) (NotificationsView, error) {
	if err := query.Validate(); err != nil {
		return NotificationsView{}, err
	}

	items, err := h.notifications.List(ctx)
	if err != nil {
		return NotificationsView{}, err
	}

	view := NotificationsView{Items: make([]NotificationView, 0, len(items))}
	for _, n := range items {
		if !n.IsRead() {
			view.UnreadCount++
		}
		view.Items = append(view.Items, NotificationView{
			ID:        n.ID(),
			Kind:      n.Kind(),
			Title:     n.Title(),
			Message:   n.Message(),
			CreatedAt: n.CreatedAt(),
			Read:      n.IsRead(),
		})
	}
	return view, nil
}
