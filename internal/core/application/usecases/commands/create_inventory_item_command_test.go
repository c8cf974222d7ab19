package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateInventoryItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	actor := kernel.NewUUID()
	price := decimal.RequireFromString("5.00")

	cmd, err := commands.NewCreateInventoryItemCommand(id, "Box of screws", "SKU-1", 10, price, "hardware", "Warehouse A", actor)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, "Box of screws", cmd.ProductName())
	assert.Equal(t, "SKU-1", cmd.ProductCode())
	assert.Equal(t, 10, cmd.Quantity())
	assert.True(t, cmd.UnitPrice().Equal(price))
	assert.Equal(t, "hardware", cmd.Category())
	assert.Equal(t, "Warehouse A", cmd.StorageLocation())
	assert.Equal(t, actor, cmd.Actor())
}

func TestNewCreateInventoryItemCommand_MissingRequiredFields(t *testing.T) {
	id := kernel.NewUUID()
	actor := kernel.NewUUID()

	_, err := commands.NewCreateInventoryItemCommand(id, "", "SKU-1", 10, decimal.Zero, "", "", actor)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateInventoryItemCommand(id, "Screws", "", 10, decimal.Zero, "", "", actor)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateInventoryItemCommand_NegativeValues(t *testing.T) {
	id := kernel.NewUUID()
	actor := kernel.NewUUID()

	_, err := commands.NewCreateInventoryItemCommand(id, "Screws", "SKU-1", -1, decimal.Zero, "", "", actor)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateInventoryItemCommand(id, "Screws", "SKU-1", 1, decimal.RequireFromString("-0.01"), "", "", actor)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCreateInventoryItemCommand_InvalidIDs(t *testing.T) {
	var zeroID kernel.UUID

	_, err := commands.NewCreateInventoryItemCommand(zeroID, "Screws", "SKU-1", 1, decimal.Zero, "", "", kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateInventoryItemCommand(kernel.NewUUID(), "Screws", "SKU-1", 1, decimal.Zero, "", "", zeroID)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateInventoryItemCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.CreateInventoryItemCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateInventoryItemCommandIsNotConstructed)
}
