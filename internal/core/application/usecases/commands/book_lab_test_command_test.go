package commands_test

import (
	"testing"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/domain/model/kernel"
	"medassist/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookLabTestCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewBookLabTestCommand(" Thyroid Profile ", "2024-05-01", decimal.NewFromInt(499), ports.PaymentCard)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Thyroid Profile", cmd.TestName())
	assert.Equal(t, "2024-05-01", cmd.ScheduledDate())
	assert.Equal(t, "499", cmd.Price().String())
	assert.Equal(t, ports.PaymentCard, cmd.PaymentMethod())
}

func TestNewBookLabTestCommand_RoundsPriceToPaise(t *testing.T) {
	cmd, err := commands.NewBookLabTestCommand("Lipid Profile", "2024-05-03", decimal.RequireFromString("349.996"), ports.PaymentUPI)

	require.NoError(t, err)
	assert.Equal(t, "350", cmd.Price().String())
}

func TestNewBookLabTestCommand_ZeroPriceIsAllowed(t *testing.T) {
	cmd, err := commands.NewBookLabTestCommand("Free Screening", "2024-05-02", decimal.Zero, ports.PaymentCOD)

	require.NoError(t, err)
	assert.True(t, cmd.Price().IsZero())
}

func TestNewBookLabTestCommand_CombinedErrors(t *testing.T) {
	_, err := commands.NewBookLabTestCommand("", " ", decimal.NewFromInt(-5), "cash")

	require.ErrorIs(t, err, commands.ErrTestNameIsRequired)
	require.ErrorIs(t, err, commands.ErrScheduledDateIsRequired)
	require.ErrorIs(t, err, kernel.ErrMoneyIsNegative)
	require.ErrorIs(t, err, commands.ErrPaymentMethodIsInvalid)
}

func TestBookLabTestCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.BookLabTestCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrBookLabTestCommandIsNotConstructed)
}
