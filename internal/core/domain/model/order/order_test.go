package order_test

import (
	"testing"
	"time"

	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCompleted(t *testing.T, label, ts string) order.Step {
	t.Helper()
	s, err := order.NewCompletedStep(label, ts)
	require.NoError(t, err)
	return s
}

func mustPending(t *testing.T, label string) order.Step {
	t.Helper()
	s, err := order.NewPendingStep(label)
	require.NoError(t, err)
	return s
}

func TestOrder_AdvanceStep(t *testing.T) {
	t.Run("medicine order walks to delivered", func(t *testing.T) {
		o, err := newTestFactory().NewMedicineOrder([]string{"Paracetamol"}, decimal.NewFromInt(30))
		require.NoError(t, err)

		expected := []string{order.LabelShipped, order.LabelOutForDelivery, order.LabelDelivered}
		for i, label := range expected {
			require.NoError(t, o.AdvanceStep("02 May, 10:15 AM"))
			assert.Equal(t, label, o.Status())
			assert.Equal(t, 3+i, o.CompletedSteps())
		}

		assert.True(t, o.IsTerminal())
		require.ErrorIs(t, o.AdvanceStep("later"), order.ErrOrderIsCompleted)
		assert.Equal(t, order.LabelDelivered, o.Status())
	})

	t.Run("lab booking gets a report when ready", func(t *testing.T) {
		o, err := newTestFactory().NewLabTestBooking("Lipid Profile", "2024-05-03", decimal.NewFromInt(650))
		require.NoError(t, err)

		require.NoError(t, o.AdvanceStep("03 May, 07:00 AM"))
		assert.Equal(t, order.LabelSampleCollected, o.Status())
		assert.False(t, o.HasReport())

		require.NoError(t, o.AdvanceStep("04 May, 06:00 PM"))
		assert.Equal(t, order.LabelReportReady, o.Status())
		assert.True(t, o.HasReport())
		assert.Contains(t, o.ReportURL(), o.ID().String())
	})

	t.Run("timestamp is required", func(t *testing.T) {
		o, err := newTestFactory().NewMedicineOrder([]string{"Paracetamol"}, decimal.NewFromInt(30))
		require.NoError(t, err)

		require.ErrorIs(t, o.AdvanceStep(" "), order.ErrStepTimestampIsRequired)
		assert.Equal(t, order.LabelConfirmed, o.Status())
	})

	t.Run("unconstructed order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.AdvanceStep("now"), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_StepsAreCopied(t *testing.T) {
	o, err := newTestFactory().NewMedicineOrder([]string{"Paracetamol"}, decimal.NewFromInt(30))
	require.NoError(t, err)

	steps := o.Steps()
	steps[4] = mustCompleted(t, "Tampered", "now")
	names := o.ItemNames()
	names[0] = "Tampered"

	assert.Equal(t, order.LabelDelivered, o.Steps()[4].Label())
	assert.Equal(t, "Paracetamol", o.ItemNames()[0])
}

func TestRestoreOrder(t *testing.T) {
	amount, _ := kernel.NewMoneyFromInt(1299)
	agent, _ := kernel.NewContact("Rajesh Kumar", "+91 98765 43210")
	createdAt := time.Date(2024, 4, 28, 18, 0, 0, 0, time.UTC)

	valid := func() order.RestoreParams {
		return order.RestoreParams{
			ID:        "4521",
			Kind:      order.Medicine,
			Title:     "Medicine Order",
			Details:   "Insulin Glargine",
			ItemNames: []string{"Insulin Glargine"},
			Amount:    amount,
			CreatedAt: createdAt,
			Steps: []order.Step{
				mustCompleted(t, order.LabelOrderPlaced, "28 Apr, 06:00 PM"),
				mustCompleted(t, order.LabelConfirmed, "28 Apr, 06:05 PM"),
				mustCompleted(t, order.LabelShipped, "29 Apr, 09:00 AM"),
				mustPending(t, order.LabelOutForDelivery),
				mustPending(t, order.LabelDelivered),
			},
			DeliveryAgent: &agent,
			InvoiceURL:    "/invoices/4521.pdf",
		}
	}

	t.Run("restores a shipped order", func(t *testing.T) {
		o, err := order.RestoreOrder(valid())

		require.NoError(t, err)
		assert.Equal(t, order.ID("4521"), o.ID())
		assert.Equal(t, order.LabelShipped, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.False(t, o.IsTerminal())
	})

	t.Run("rejects a completed step after a pending one", func(t *testing.T) {
		p := valid()
		p.Steps[2] = mustPending(t, order.LabelShipped)
		p.Steps[3] = mustCompleted(t, order.LabelOutForDelivery, "now")

		_, err := order.RestoreOrder(p)

		require.ErrorIs(t, err, order.ErrStepsAreNotMonotonic)
	})

	t.Run("rejects missing steps, bad id and kind", func(t *testing.T) {
		p := valid()
		p.ID = "A-1"
		p.Kind = order.UnknownKind
		p.Steps = nil

		_, err := order.RestoreOrder(p)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrStepsAreRequired)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "kind")
	})

	t.Run("rejects unconstructed amount", func(t *testing.T) {
		p := valid()
		p.Amount = kernel.Money{}

		_, err := order.RestoreOrder(p)

		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
	})

	t.Run("equality is by id", func(t *testing.T) {
		a, err := order.RestoreOrder(valid())
		require.NoError(t, err)
		p := valid()
		p.Details = "changed"
		b, err := order.RestoreOrder(p)
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(nil))
	})
}
