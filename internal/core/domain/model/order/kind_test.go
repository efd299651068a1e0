package order_test

import (
	"testing"

	"medassist/internal/core/domain/model/order"
	"medassist/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	t.Run("wire names round trip", func(t *testing.T) {
		for _, kind := range []order.Kind{order.Medicine, order.LabTest} {
			parsed, err := order.ParseKind(kind.String())

			require.NoError(t, err)
			assert.Equal(t, kind, parsed)
			require.NoError(t, kind.Validate())
		}
		assert.Equal(t, "lab_test", order.LabTest.String())
	})

	t.Run("unknown kinds", func(t *testing.T) {
		_, err := order.ParseKind("appointment")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		require.Error(t, order.UnknownKind.Validate())
		require.Error(t, order.Kind(42).Validate())
		assert.Equal(t, "unknown", order.Kind(42).String())
	})

	t.Run("templates have five steps", func(t *testing.T) {
		assert.Equal(t, []string{
			order.LabelOrderPlaced, order.LabelConfirmed, order.LabelShipped,
			order.LabelOutForDelivery, order.LabelDelivered,
		}, order.Medicine.StepLabels())
		assert.Equal(t, []string{
			order.LabelBooked, order.LabelConfirmed, order.LabelSampleCollected,
			order.LabelReportReady, order.LabelCompleted,
		}, order.LabTest.StepLabels())
	})
}
