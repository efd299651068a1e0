package memory

import (
	"context"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/notification"
	"medassist/internal/pkg/errs"
)

// NotificationRepository implements ports.NotificationRepository over a Database.
type NotificationRepository struct {
	db   *Database
	inTx bool
}

// NewNotificationRepository creates a repository that is not bound to a unit of work.
func NewNotificationRepository(db *Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Add stores a notification at the top of the list.
func (r *NotificationRepository) Add(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	stored, err := cloneNotification(n)
	if err != nil {
		return err
	}

	defer r.db.lockWriter(r.inTx)()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.notificationIndex[n.ID()]; ok {
		return errs.NewObjectAlreadyExistsError("notification", n.ID().String())
	}
	r.db.notificationIndex[n.ID()] = len(r.db.notifications)
	r.db.notifications = append(r.db.notifications, stored)
	return nil
}

// Update replaces a stored notification.
func (r *NotificationRepository) Update(_ context.Context, n *notification.Notification) error {
	if err := n.Validate(); err != nil {
		return err
	}
	stored, err := cloneNotification(n)
	if err != nil {
		return err
	}

	defer r.db.lockWriter(r.inTx)()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	i, ok := r.db.notificationIndex[n.ID()]
	if !ok {
		return errs.NewObjectNotFoundError("notification", n.ID().String())
	}
	r.db.notifications[i] = stored
	return nil
}

// Get returns a copy of the stored notification.
func (r *NotificationRepository) Get(_ context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	i, ok := r.db.notificationIndex[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("notification", id.String())
	}
	return cloneNotification(r.db.notifications[i])
}

// List returns copies of the notifications, newest first.
func (r *NotificationRepository) List(_ context.Context) ([]*notification.Notification, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*notification.Notification, 0, len(r.db.notifications))
	for i := len(r.db.notifications) - 1; i >= 0; i-- {
		c, err := cloneNotification(r.db.notifications[i])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func cloneNotification(n *notification.Notification) (*notification.Notification, error) {
	return notification.RestoreNotification(n.ID(), n.Kind(), n.Title(), n.Message(), n.CreatedAt(), n.IsRead())
}
