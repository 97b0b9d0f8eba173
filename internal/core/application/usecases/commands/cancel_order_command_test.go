package commands_test

import (
	"testing"

	"bloodlink/internal/core/application/usecases/commands"
	"bloodlink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_ValidInput(t *testing.T) {
	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(deliveryID)
	require.NoError(t, err)
	assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
	require.NoError(t, cmd.Validate())
}

func TestNewCancelOrderCommand_InvalidDeliveryID(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCancelOrderCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
