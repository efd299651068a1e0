package order_test

import (
	"testing"

	"medassist/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletedStep(t *testing.T) {
	s, err := order.NewCompletedStep(" Shipped ", "Just now")

	require.NoError(t, err)
	require.NoError(t, s.Validate())
	assert.Equal(t, "Shipped", s.Label())
	assert.True(t, s.IsCompleted())
	ts, ok := s.Timestamp()
	assert.True(t, ok)
	assert.Equal(t, "Just now", ts)

	_, err = order.NewCompletedStep("", "")
	require.ErrorIs(t, err, order.ErrStepLabelIsRequired)
	require.ErrorIs(t, err, order.ErrStepTimestampIsRequired)
}

func TestNewPendingStep(t *testing.T) {
	s, err := order.NewPendingStep("Delivered")

	require.NoError(t, err)
	assert.False(t, s.IsCompleted())
	ts, ok := s.Timestamp()
	assert.False(t, ok)
	assert.Empty(t, ts)

	_, err = order.NewPendingStep("   ")
	require.ErrorIs(t, err, order.ErrStepLabelIsRequired)
}

func TestStep_ZeroValue(t *testing.T) {
	var s order.Step

	require.ErrorIs(t, s.Validate(), order.ErrStepIsNotConstructed)
}
