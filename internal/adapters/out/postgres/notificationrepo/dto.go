// Package notificationrepo persists bell-menu notifications with GORM.
package notificationrepo

import (
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO maps a notification onto the notifications table.
type NotificationDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"->"`
	Kind      string
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

// TableName overrides GORM's default naming.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:        n.ID().Google(),
		Kind:      string(n.Kind()),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	return notification.RestoreNotification(
		id,
		notification.Kind(dto.Kind),
		dto.Title,
		dto.Message,
		dto.CreatedAt,
		dto.IsRead,
	)
}
