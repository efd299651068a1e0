package commands_test

import (
	"testing"

	"medassist/internal/core/application/usecases/commands"
	"medassist/internal/core/ports"
	"medassist/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cart() []commands.CartLine {
	return []commands.CartLine{
		{Name: "Paracetamol", Price: decimal.NewFromInt(30), Quantity: 1},
		{Name: "Vitamin C", Price: decimal.NewFromInt(120), Quantity: 1},
	}
}

func TestNewPlaceMedicineOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewPlaceMedicineOrderCommand(cart(), ports.PaymentUPI)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, []string{"Paracetamol", "Vitamin C"}, cmd.ItemNames())
	assert.Equal(t, "150", cmd.Total().String())
	assert.Equal(t, ports.PaymentUPI, cmd.PaymentMethod())
}

func TestNewPlaceMedicineOrderCommand_QuantitiesAndPaise(t *testing.T) {
	cmd, err := commands.NewPlaceMedicineOrderCommand([]commands.CartLine{
		{Name: " ORS Sachet ", Price: decimal.RequireFromString("19.50"), Quantity: 3},
		{Name: "Cetirizine", Price: decimal.NewFromInt(25), Quantity: 2},
	}, ports.PaymentCOD)

	require.NoError(t, err)
	assert.Equal(t, "108.50", cmd.Total().String())
	assert.Equal(t, []string{"ORS Sachet", "Cetirizine"}, cmd.ItemNames())
}

func TestNewPlaceMedicineOrderCommand_RoundsPricesToPaise(t *testing.T) {
	cmd, err := commands.NewPlaceMedicineOrderCommand([]commands.CartLine{
		{Name: "Cough Syrup", Price: decimal.RequireFromString("10.005"), Quantity: 3},
	}, ports.PaymentCard)

	require.NoError(t, err)
	assert.Equal(t, "30.03", cmd.Total().String())
	assert.True(t, cmd.Total().Amount().Equal(cmd.Total().Amount().Round(2)))
}

func TestNewPlaceMedicineOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewPlaceMedicineOrderCommand(nil, ports.PaymentUPI)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceMedicineOrderCommand_InvalidLines(t *testing.T) {
	tests := []struct {
		name string
		line commands.CartLine
		want error
	}{
		{"blank name", commands.CartLine{Name: "  ", Price: decimal.NewFromInt(10), Quantity: 1}, commands.ErrCartLineNameIsRequired},
		{"zero quantity", commands.CartLine{Name: "ORS", Price: decimal.NewFromInt(10)}, commands.ErrQuantityMustBePositive},
		{"negative price", commands.CartLine{Name: "ORS", Price: decimal.NewFromInt(-1), Quantity: 1}, commands.ErrCartLinePriceIsNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewPlaceMedicineOrderCommand([]commands.CartLine{tt.line}, ports.PaymentCard)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewPlaceMedicineOrderCommand_CombinedErrors(t *testing.T) {
	_, err := commands.NewPlaceMedicineOrderCommand(nil, "paypal")

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	require.ErrorIs(t, err, commands.ErrPaymentMethodIsInvalid)
}

func TestPlaceMedicineOrderCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.PlaceMedicineOrderCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceMedicineOrderCommandIsNotConstructed)
}

func TestPlaceMedicineOrderCommand_ItemNamesAreCopied(t *testing.T) {
	cmd, err := commands.NewPlaceMedicineOrderCommand(cart(), ports.PaymentUPI)
	require.NoError(t, err)

	names := cmd.ItemNames()
	names[0] = "changed"

	assert.Equal(t, "Paracetamol", cmd.ItemNames()[0])
}
