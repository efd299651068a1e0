package notification_test

import (
	"testing"
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/notification"
	"medassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("new notifications are unread", func(t *testing.T) {
		n, err := notification.NewNotification(notification.KindOrder, "Order Placed", "Order #4821 confirmed", at)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		require.NoError(t, n.ID().Validate())
		assert.Equal(t, notification.KindOrder, n.Kind())
		assert.Equal(t, "Order Placed", n.Title())
		assert.Equal(t, "Order #4821 confirmed", n.Message())
		assert.Equal(t, at, n.CreatedAt())
		assert.False(t, n.IsRead())
	})

	t.Run("mark read is idempotent", func(t *testing.T) {
		n, err := notification.NewNotification(notification.KindSystem, "Welcome", "Hello", at)
		require.NoError(t, err)

		n.MarkRead()
		n.MarkRead()

		assert.True(t, n.IsRead())
	})

	t.Run("validation errors are joined", func(t *testing.T) {
		_, err := notification.NewNotification("promo", " ", "", at)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, notification.ErrTitleIsRequired)
		require.ErrorIs(t, err, notification.ErrMessageIsRequired)
	})

	t.Run("restore keeps read flag", func(t *testing.T) {
		id := kernel.NewUUID()

		n, err := notification.RestoreNotification(id, notification.KindOrder, "t", "m", at, true)

		require.NoError(t, err)
		assert.True(t, n.ID().IsEqual(id))
		assert.True(t, n.IsRead())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var n *notification.Notification

		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}
